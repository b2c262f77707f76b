package input

import (
	"testing"

	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		key      string
		expected snake.Input
	}{
		{"ArrowUp", snake.InputUp},
		{"ArrowDown", snake.InputDown},
		{"ArrowLeft", snake.InputLeft},
		{"ArrowRight", snake.InputRight},
		{"up", snake.InputUp},
		{"down", snake.InputDown},
		{"left", snake.InputLeft},
		{"right", snake.InputRight},
		{"W", snake.InputUp},
		{"a", snake.InputLeft},
		{"s", snake.InputDown},
		{"d", snake.InputRight},
		{"Space", snake.InputNone},
		{"enter", snake.InputNone},
		{"p", snake.InputNone},
		{"", snake.InputNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := Translate(tc.key); got != tc.expected {
				t.Errorf("Translate(%q) = %s, expected %s", tc.key, got, tc.expected)
			}
			if IsDirectionKey(tc.key) != (tc.expected != snake.InputNone) {
				t.Errorf("IsDirectionKey(%q) disagrees with Translate", tc.key)
			}
		})
	}
}

func TestListenerLifecycle(t *testing.T) {
	l := NewListener()

	if _, ok := l.Handle("up"); ok {
		t.Error("detached listener should not deliver input")
	}

	if !l.Attach() {
		t.Error("first Attach() should succeed")
	}
	if l.Attach() {
		t.Error("second Attach() should be a no-op")
	}

	in, ok := l.Handle("ArrowLeft")
	if !ok || in != snake.InputLeft {
		t.Errorf("Handle(ArrowLeft) = %s, %v; expected left, true", in, ok)
	}
	if _, ok := l.Handle("x"); ok {
		t.Error("unknown key should be ignored")
	}

	if !l.Detach() {
		t.Error("Detach() should succeed while attached")
	}
	if l.Detach() {
		t.Error("second Detach() should be a no-op")
	}
	if l.Attached() {
		t.Error("listener should be detached")
	}
	if _, ok := l.Handle("up"); ok {
		t.Error("detached listener should not deliver input")
	}
}

// Package input turns host key names into snake direction requests.
// Hosts pass whatever name their event system uses (browser key codes,
// Bubble Tea key strings, WASD letters) and get back a snake.Input.
package input

import (
	"strings"

	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

// keyInputs maps lowercased key names to directions.
var keyInputs = map[string]snake.Input{
	// browser KeyboardEvent.code
	"arrowup":    snake.InputUp,
	"arrowdown":  snake.InputDown,
	"arrowleft":  snake.InputLeft,
	"arrowright": snake.InputRight,

	// Bubble Tea key strings
	"up":    snake.InputUp,
	"down":  snake.InputDown,
	"left":  snake.InputLeft,
	"right": snake.InputRight,

	"w": snake.InputUp,
	"s": snake.InputDown,
	"a": snake.InputLeft,
	"d": snake.InputRight,
}

// Translate maps a key name to a direction. Unknown keys yield InputNone.
func Translate(key string) snake.Input {
	if in, ok := keyInputs[strings.ToLower(key)]; ok {
		return in
	}
	return snake.InputNone
}

// IsDirectionKey reports whether key maps to a direction.
func IsDirectionKey(key string) bool {
	return Translate(key) != snake.InputNone
}

// Listener is a keyboard listener that only delivers while attached.
// Attach and Detach are idempotent, so at most one attachment is ever live.
type Listener struct {
	attached bool
}

// NewListener returns a detached listener.
func NewListener() *Listener {
	return &Listener{}
}

// Attach starts delivering input. Returns false if already attached.
func (l *Listener) Attach() bool {
	if l.attached {
		return false
	}
	l.attached = true
	return true
}

// Detach stops delivering input. Returns false if already detached.
func (l *Listener) Detach() bool {
	if !l.attached {
		return false
	}
	l.attached = false
	return true
}

// Attached reports whether the listener is live.
func (l *Listener) Attached() bool {
	return l.attached
}

// Handle translates key if the listener is attached.
// The second result is false when detached or when the key is ignored.
func (l *Listener) Handle(key string) (snake.Input, bool) {
	if !l.attached {
		return snake.InputNone, false
	}
	in := Translate(key)
	return in, in != snake.InputNone
}

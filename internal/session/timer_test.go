package session

import (
	"testing"
	"time"
)

func TestTimerGenerations(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)

	if tm.Active() {
		t.Fatal("new timer should be stopped")
	}

	g1 := tm.Start()
	if !tm.Current(g1) {
		t.Error("started generation should be current")
	}
	if again := tm.Start(); again != g1 {
		t.Errorf("Start() on active timer = %d, expected %d", again, g1)
	}

	if !tm.Stop() {
		t.Error("Stop() on active timer should report true")
	}
	if tm.Stop() {
		t.Error("Stop() on stopped timer should report false")
	}
	if tm.Current(g1) {
		t.Error("generation should be stale after Stop()")
	}

	g2 := tm.Start()
	if g2 == g1 {
		t.Error("restart must produce a new generation")
	}
	if tm.Current(g1) || !tm.Current(g2) {
		t.Error("only the newest generation may be current")
	}
}

func TestTimerAdvance(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)

	if n := tm.Advance(time.Second); n != 0 {
		t.Errorf("stopped timer Advance() = %d, expected 0", n)
	}

	tm.Start()
	steps := []struct {
		dt   time.Duration
		want int
	}{
		{40 * time.Millisecond, 0},
		{40 * time.Millisecond, 0},
		{40 * time.Millisecond, 1}, // 120ms
		{80 * time.Millisecond, 1}, // 200ms
		{250 * time.Millisecond, 2},
	}
	for i, st := range steps {
		if n := tm.Advance(st.dt); n != st.want {
			t.Errorf("step %d: Advance(%s) = %d, expected %d", i, st.dt, n, st.want)
		}
	}

	// Stopping discards partial progress.
	tm.Stop()
	tm.Start()
	if n := tm.Advance(60 * time.Millisecond); n != 0 {
		t.Errorf("after restart Advance() = %d, expected 0", n)
	}
}

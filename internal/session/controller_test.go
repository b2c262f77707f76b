package session

import (
	"testing"
	"time"

	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func newController(rules snake.Rules) *Controller {
	return New(snake.New(rules, zeroRand{}), 100*time.Millisecond, nil)
}

// assertHeld checks that timer and listener are active exactly when running.
func assertHeld(t *testing.T, c *Controller, step string) {
	t.Helper()
	running := c.Status() == snake.StatusRunning
	if c.Ticking() != running {
		t.Errorf("%s: ticking = %v with status %s", step, c.Ticking(), c.Status())
	}
	if c.Listening() != running {
		t.Errorf("%s: listening = %v with status %s", step, c.Listening(), c.Status())
	}
}

func TestControllerLifecycle(t *testing.T) {
	c := newController(snake.DefaultRules())
	assertHeld(t, c, "new")

	if c.TogglePause() {
		t.Error("TogglePause() before start should not schedule ticks")
	}
	assertHeld(t, c, "pause before start")

	if !c.Start() {
		t.Fatal("Start() should schedule ticks")
	}
	assertHeld(t, c, "start")
	if c.Start() {
		t.Error("second Start() should be a no-op")
	}

	if c.TogglePause() {
		t.Error("pausing should not schedule ticks")
	}
	assertHeld(t, c, "pause")

	if !c.TogglePause() {
		t.Error("resuming should schedule ticks")
	}
	assertHeld(t, c, "resume")

	c.Restart()
	assertHeld(t, c, "restart")
	if c.Status() != snake.StatusNotStarted {
		t.Errorf("status after Restart() = %s", c.Status())
	}
}

func TestControllerDropsStaleTicks(t *testing.T) {
	c := newController(snake.DefaultRules())
	c.Start()
	gen := c.Generation()

	if !c.Tick(gen) {
		t.Fatal("live tick should continue")
	}
	if head := c.Game().Head(); head != (snake.Point{X: 3, Y: 0}) {
		t.Fatalf("head = %v, expected (3,0)", head)
	}

	c.TogglePause()
	if c.Tick(gen) {
		t.Error("tick from before pause should be dropped")
	}
	c.TogglePause()
	if c.Tick(gen) {
		t.Error("tick from before resume should be dropped")
	}
	if head := c.Game().Head(); head != (snake.Point{X: 3, Y: 0}) {
		t.Errorf("stale tick moved the snake to %v", head)
	}

	live := c.Generation()
	c.Restart()
	if c.Tick(live) {
		t.Error("tick from before restart should be dropped")
	}
	if c.Game().Ticks() != 0 {
		t.Errorf("Ticks() after restart = %d", c.Game().Ticks())
	}
}

func TestControllerKeysOnlyWhileRunning(t *testing.T) {
	c := newController(snake.DefaultRules())

	if c.Key("ArrowDown") {
		t.Error("key accepted before start")
	}
	c.Start()
	if c.Key("Enter") {
		t.Error("non-direction key should be ignored")
	}
	if c.Key("ArrowLeft") {
		t.Error("reversal should not change direction")
	}
	if !c.Key("ArrowDown") {
		t.Error("perpendicular key should change direction")
	}

	c.TogglePause()
	if c.Key("right") {
		t.Error("key accepted while paused")
	}
	if got := c.Game().Direction(); got != snake.DirDown {
		t.Errorf("direction = %s, expected down", got)
	}
}

func TestControllerReleasesOnGameOver(t *testing.T) {
	rules := snake.DefaultRules()
	rules.InitialSnake = []snake.Point{{X: 39, Y: 5}}

	c := newController(rules)
	c.Start()
	if c.Tick(c.Generation()) {
		t.Error("collision tick should not schedule another")
	}
	if c.Status() != snake.StatusGameOver {
		t.Fatalf("status = %s, expected game_over", c.Status())
	}
	assertHeld(t, c, "game over")

	if c.Key("up") {
		t.Error("key accepted after game over")
	}
}

func TestControllerAdvance(t *testing.T) {
	c := newController(snake.DefaultRules())

	c.Advance(time.Second)
	if c.Game().Ticks() != 0 {
		t.Fatal("Advance() before start should not tick")
	}

	c.Start()
	c.Advance(250 * time.Millisecond)
	if c.Game().Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", c.Game().Ticks())
	}
	c.Advance(50 * time.Millisecond)
	if c.Game().Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", c.Game().Ticks())
	}

	// Long frames stop at the collision.
	c.Advance(10 * time.Second)
	if c.Status() != snake.StatusGameOver {
		t.Errorf("status = %s, expected game_over", c.Status())
	}
	assertHeld(t, c, "advance to wall")
}

func TestControllerClose(t *testing.T) {
	c := newController(snake.DefaultRules())
	c.Start()
	c.Close()

	if c.Ticking() || c.Listening() {
		t.Error("Close() must release timer and listener")
	}
	if c.Start() || c.TogglePause() {
		t.Error("closed controller should ignore controls")
	}
}

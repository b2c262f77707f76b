// Package session binds one snake game to its step timer and keyboard
// listener. The timer and listener are held exactly while the game is
// running and released on every path out of that state: pause, game over,
// restart and close.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-canvas/internal/games/snake"
	"github.com/vovakirdan/snake-canvas/internal/input"
)

// Controller drives a single game for one host.
// It is not safe for concurrent use.
type Controller struct {
	game     *snake.Game
	timer    *Timer
	listener *input.Listener
	logger   *log.Logger
	closed   bool
}

// New creates a controller for game with the given step period.
// A nil logger discards output.
func New(game *snake.Game, period time.Duration, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		game:     game,
		timer:    NewTimer(period),
		listener: input.NewListener(),
		logger:   logger,
	}
}

// Game returns the controlled game for reading.
func (c *Controller) Game() *snake.Game {
	return c.game
}

// Status is shorthand for Game().Status().
func (c *Controller) Status() snake.Status {
	return c.game.Status()
}

// Period returns the step period.
func (c *Controller) Period() time.Duration {
	return c.timer.Period()
}

// Generation returns the live timer generation to tag scheduled ticks with.
func (c *Controller) Generation() uint64 {
	return c.timer.Generation()
}

// Ticking reports whether the step timer is armed.
func (c *Controller) Ticking() bool {
	return c.timer.Active()
}

// Listening reports whether the keyboard listener is attached.
func (c *Controller) Listening() bool {
	return c.listener.Attached()
}

// Start begins a game from the start screen.
// Returns true if the timer was armed and a tick must be scheduled.
func (c *Controller) Start() bool {
	if c.closed || !c.game.Start() {
		return false
	}
	c.logger.Debug("game started")
	c.acquire()
	return true
}

// TogglePause pauses a running game or resumes a paused one.
// Returns true when resuming, meaning a tick must be scheduled.
func (c *Controller) TogglePause() bool {
	if c.closed {
		return false
	}
	switch c.game.Status() {
	case snake.StatusRunning:
		c.game.Pause()
		c.release()
		c.logger.Debug("game paused", "score", c.game.Score())
	case snake.StatusPaused:
		c.game.Resume()
		c.acquire()
		c.logger.Debug("game resumed")
		return true
	}
	return false
}

// Restart returns to the start screen from any state.
func (c *Controller) Restart() {
	if c.closed {
		return
	}
	c.release()
	prev := c.game.Status()
	c.game.Reset()
	c.logger.Debug("game reset", "from", prev)
}

// Key delivers a key press. Keys are only applied while the listener is
// attached, which is exactly while the game runs.
func (c *Controller) Key(name string) bool {
	in, ok := c.listener.Handle(name)
	if !ok {
		return false
	}
	return c.game.SetDirection(in)
}

// Tick runs one step if gen is the live timer generation.
// Returns true if the caller should schedule the next tick.
func (c *Controller) Tick(gen uint64) bool {
	if !c.timer.Current(gen) {
		return false
	}
	return c.step()
}

// Advance runs as many steps as dt covers. For hosts that poll per frame.
func (c *Controller) Advance(dt time.Duration) {
	for n := c.timer.Advance(dt); n > 0; n-- {
		if !c.step() {
			return
		}
	}
}

func (c *Controller) step() bool {
	res := c.game.Tick()
	switch res.Outcome {
	case snake.TickAte:
		c.logger.Debug("apple eaten", "score", c.game.Score(), "apple", c.game.Apple())
	case snake.TickCollided:
		c.release()
		c.logger.Info("game over", "score", c.game.Score(), "collision", res.Collision, "ticks", c.game.Ticks())
		return false
	case snake.TickSkipped:
		c.release()
		return false
	}
	return true
}

// Close releases the timer and listener for good, e.g. when the host exits.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.release()
	c.closed = true
}

func (c *Controller) acquire() {
	c.timer.Start()
	c.listener.Attach()
}

func (c *Controller) release() {
	c.timer.Stop()
	c.listener.Detach()
}

// Package snake implements the Snake state machine: body, direction, apple,
// score and lifecycle status, advanced one fixed tick at a time.
// It has no knowledge of timers, key events or drawing surfaces.
package snake

// Rand is the randomness the game needs for apple respawns.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Game is a single Snake game. All state belongs to the instance.
// Game is not safe for concurrent use; hosts drive it from one goroutine.
type Game struct {
	rules Rules
	rng   Rand

	status    Status
	body      []Point // head at index 0
	direction Direction
	apple     Point
	score     int
	ticks     uint64
}

// New creates a game in the NotStarted state.
// The rules are assumed valid; see Rules.Validate.
func New(rules Rules, rng Rand) *Game {
	g := &Game{
		rules: rules,
		rng:   rng,
	}
	g.Reset()
	return g
}

// Reset reinitializes every field to the initial position and returns
// the game to NotStarted. Valid from any state.
func (g *Game) Reset() {
	g.status = StatusNotStarted
	g.body = append([]Point(nil), g.rules.InitialSnake...)
	g.direction = g.rules.InitialDirection
	g.apple = g.rules.InitialApple
	g.score = 0
	g.ticks = 0
}

// Start moves NotStarted to Running.
func (g *Game) Start() bool {
	if g.status != StatusNotStarted {
		return false
	}
	g.status = StatusRunning
	return true
}

// Pause moves Running to Paused.
func (g *Game) Pause() bool {
	if g.status != StatusRunning {
		return false
	}
	g.status = StatusPaused
	return true
}

// Resume moves Paused to Running.
func (g *Game) Resume() bool {
	if g.status != StatusPaused {
		return false
	}
	g.status = StatusRunning
	return true
}

// TogglePause switches between Running and Paused.
func (g *Game) TogglePause() bool {
	if g.status == StatusPaused {
		return g.Resume()
	}
	return g.Pause()
}

// SetDirection applies a direction request. Only one axis changes per
// call, and a request opposite the current direction keeps that axis as
// it is. Returns true if the direction actually changed.
func (g *Game) SetDirection(in Input) bool {
	if g.status != StatusRunning {
		return false
	}

	next := g.direction
	switch in {
	case InputUp:
		if g.direction.Y != 1 {
			next.Y = -1
		}
		next.X = 0
	case InputDown:
		if g.direction.Y != -1 {
			next.Y = 1
		}
		next.X = 0
	case InputLeft:
		if g.direction.X != 1 {
			next.X = -1
		}
		next.Y = 0
	case InputRight:
		if g.direction.X != -1 {
			next.X = 1
		}
		next.Y = 0
	default:
		return false
	}

	changed := next != g.direction
	g.direction = next
	return changed
}

// Tick advances the game by one step. Collisions are checked against the
// body as it was before this tick, and the body is left untouched when
// the game ends.
func (g *Game) Tick() TickResult {
	if g.status != StatusRunning {
		return TickResult{Outcome: TickSkipped, Head: g.Head()}
	}
	g.ticks++

	newHead := g.body[0].Add(g.direction)

	if !g.rules.InBounds(newHead) {
		g.status = StatusGameOver
		return TickResult{Outcome: TickCollided, Collision: CollisionWall, Head: newHead}
	}
	if g.occupies(newHead) {
		g.status = StatusGameOver
		return TickResult{Outcome: TickCollided, Collision: CollisionSelf, Head: newHead}
	}

	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = newHead

	if newHead == g.apple {
		g.apple = g.randomCell()
		g.score += g.rules.ScorePerApple
		return TickResult{Outcome: TickAte, Head: newHead}
	}

	g.body = g.body[:len(g.body)-1]
	return TickResult{Outcome: TickMoved, Head: newHead}
}

// randomCell picks a uniformly random board cell. The body is not
// excluded, so the apple can land under the snake.
func (g *Game) randomCell() Point {
	x := g.rng.Intn(g.rules.Width)
	y := g.rng.Intn(g.rules.Height)
	return Point{X: x, Y: y}
}

// occupies reports whether any body segment is at p.
func (g *Game) occupies(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Point {
	return append([]Point(nil), g.body...)
}

// Head returns the first body segment.
func (g *Game) Head() Point {
	return g.body[0]
}

// Direction returns the current movement direction.
func (g *Game) Direction() Direction {
	return g.direction
}

// Apple returns the apple position.
func (g *Game) Apple() Point {
	return g.apple
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of ticks processed while running since the last reset.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

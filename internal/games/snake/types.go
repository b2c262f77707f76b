package snake

// Point represents a grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a unit movement vector along exactly one axis.
type Direction struct {
	X, Y int
}

// The four legal directions. Y grows downward.
var (
	DirRight = Direction{X: 1, Y: 0}
	DirLeft  = Direction{X: -1, Y: 0}
	DirDown  = Direction{X: 0, Y: 1}
	DirUp    = Direction{X: 0, Y: -1}
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsUnit reports whether d is one of the four legal directions.
func (d Direction) IsUnit() bool {
	return (d.X == 0 && (d.Y == 1 || d.Y == -1)) || (d.Y == 0 && (d.X == 1 || d.X == -1))
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Input is a direction request decoupled from any key event representation.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
)

func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	default:
		return "none"
	}
}

// Status is the lifecycle state of a game.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusRunning    Status = "running"
	StatusPaused     Status = "paused"
	StatusGameOver   Status = "game_over"
)

// TickOutcome describes what a single tick did.
type TickOutcome int

const (
	TickSkipped  TickOutcome = iota // game was not running
	TickMoved                       // head advanced, tail dropped
	TickAte                         // head landed on the apple, snake grew
	TickCollided                    // collision, game is over
)

func (o TickOutcome) String() string {
	switch o {
	case TickSkipped:
		return "skipped"
	case TickMoved:
		return "moved"
	case TickAte:
		return "ate"
	case TickCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Collision identifies what ended the game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// TickResult is returned by Game.Tick.
type TickResult struct {
	Outcome   TickOutcome
	Collision Collision
	Head      Point // head after the tick (or the rejected head on collision)
}

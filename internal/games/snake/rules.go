package snake

import (
	"errors"
	"fmt"
)

// Validation errors returned by Rules.Validate.
var (
	ErrBoardTooSmall    = errors.New("board must be at least 2x2 cells")
	ErrEmptySnake       = errors.New("initial snake must have at least one segment")
	ErrSnakeOutOfBounds = errors.New("initial snake segment outside the board")
	ErrSnakeOverlap     = errors.New("initial snake segments overlap")
	ErrBadDirection     = errors.New("initial direction must be a unit vector")
	ErrAppleOutOfBounds = errors.New("initial apple outside the board")
	ErrBadScore         = errors.New("score per apple must not be negative")
)

// Rules holds the board and scoring parameters for a game.
type Rules struct {
	Width            int
	Height           int
	ScorePerApple    int
	InitialSnake     []Point // head first
	InitialDirection Direction
	InitialApple     Point
}

// DefaultRules returns the classic 40x20 board.
func DefaultRules() Rules {
	return Rules{
		Width:            40,
		Height:           20,
		ScorePerApple:    50,
		InitialSnake:     []Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		InitialDirection: DirRight,
		InitialApple:     Point{X: 10, Y: 10},
	}
}

// InBounds reports whether p lies on the board.
func (r Rules) InBounds(p Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// Validate checks that the rules describe a playable starting position.
func (r Rules) Validate() error {
	if r.Width < 2 || r.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrBoardTooSmall, r.Width, r.Height)
	}
	if len(r.InitialSnake) == 0 {
		return ErrEmptySnake
	}
	seen := make(map[Point]bool, len(r.InitialSnake))
	for _, p := range r.InitialSnake {
		if !r.InBounds(p) {
			return fmt.Errorf("%w: (%d, %d)", ErrSnakeOutOfBounds, p.X, p.Y)
		}
		if seen[p] {
			return fmt.Errorf("%w: (%d, %d)", ErrSnakeOverlap, p.X, p.Y)
		}
		seen[p] = true
	}
	if !r.InitialDirection.IsUnit() {
		return fmt.Errorf("%w: (%d, %d)", ErrBadDirection, r.InitialDirection.X, r.InitialDirection.Y)
	}
	if !r.InBounds(r.InitialApple) {
		return fmt.Errorf("%w: (%d, %d)", ErrAppleOutOfBounds, r.InitialApple.X, r.InitialApple.Y)
	}
	if r.ScorePerApple < 0 {
		return fmt.Errorf("%w: %d", ErrBadScore, r.ScorePerApple)
	}
	return nil
}

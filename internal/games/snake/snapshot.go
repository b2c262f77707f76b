package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Ticks     uint64
	Status    Status
	Score     int
	Snake     []Point
	Direction Direction
	Apple     Point
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     g.ticks,
		Status:    g.status,
		Score:     g.score,
		Snake:     g.Snake(),
		Direction: g.direction,
		Apple:     g.apple,
	}
}

// Head returns the snapshot's head segment.
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}

// String is a compact debug representation.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d status=%s score=%d dir=%s apple=(%d,%d) snake=",
		s.Ticks, s.Status, s.Score, s.Direction, s.Apple.X, s.Apple.Y)
	for i, p := range s.Snake {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d,%d)", p.X, p.Y)
	}
	return b.String()
}

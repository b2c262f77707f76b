package session

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-canvas/internal/config"
	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

// FromConfig builds a game from cfg, seeded with seed, and wraps it in a
// controller using the configured tick period.
func FromConfig(cfg config.Config, seed int64, logger *log.Logger) *Controller {
	game := snake.New(cfg.Rules(), rand.New(rand.NewSource(seed)))
	return New(game, cfg.Timing.TickPeriod, logger)
}

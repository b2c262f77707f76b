// Package config provides YAML-based configuration loading for the snake
// board, rules, timing and colors.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

// Validation errors not covered by snake.Rules.
var (
	ErrBadCellSize   = errors.New("cell size must be positive")
	ErrBadTickPeriod = errors.New("tick period must be positive")
	ErrBadFontSize   = errors.New("font size must be positive")
	ErrBadColor      = errors.New("invalid color")
)

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   SnakeConfig   `yaml:"snake"`
	Apple   AppleConfig   `yaml:"apple"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
	Colors  ColorsConfig  `yaml:"colors"`
	HUD     HUDConfig     `yaml:"hud"`
}

// BoardConfig defines the grid and its pixel scale.
type BoardConfig struct {
	Width    int `yaml:"width"`     // cells
	Height   int `yaml:"height"`    // cells
	CellSize int `yaml:"cell_size"` // pixels per cell side
}

// PointConfig is a grid coordinate or direction vector.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	Initial   []PointConfig `yaml:"initial"` // head first
	Direction PointConfig   `yaml:"direction"`
}

// AppleConfig defines the starting apple.
type AppleConfig struct {
	Initial PointConfig `yaml:"initial"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	PerApple int `yaml:"per_apple"`
}

// TimingConfig defines the step clock.
type TimingConfig struct {
	TickPeriod time.Duration `yaml:"tick_period"`
}

// ColorsConfig holds "#rrggbb" colors for each drawn element.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Snake      string `yaml:"snake"`
	Apple      string `yaml:"apple"`
	Text       string `yaml:"text"`
}

// HUDConfig places the score text, in pixels.
type HUDConfig struct {
	FontSize float64 `yaml:"font_size"`
	ScoreX   int     `yaml:"score_x"`
	ScoreY   int     `yaml:"score_y"` // text baseline
}

// Rules converts the board, snake, apple and scoring sections.
func (c Config) Rules() snake.Rules {
	body := make([]snake.Point, len(c.Snake.Initial))
	for i, p := range c.Snake.Initial {
		body[i] = snake.Point{X: p.X, Y: p.Y}
	}
	return snake.Rules{
		Width:            c.Board.Width,
		Height:           c.Board.Height,
		ScorePerApple:    c.Scoring.PerApple,
		InitialSnake:     body,
		InitialDirection: snake.Direction{X: c.Snake.Direction.X, Y: c.Snake.Direction.Y},
		InitialApple:     snake.Point{X: c.Apple.Initial.X, Y: c.Apple.Initial.Y},
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("config: %w: %d", ErrBadCellSize, c.Board.CellSize)
	}
	if c.Timing.TickPeriod <= 0 {
		return fmt.Errorf("config: %w: %s", ErrBadTickPeriod, c.Timing.TickPeriod)
	}
	if c.HUD.FontSize <= 0 {
		return fmt.Errorf("config: %w: %g", ErrBadFontSize, c.HUD.FontSize)
	}

	colors := map[string]string{
		"background": c.Colors.Background,
		"border":     c.Colors.Border,
		"snake":      c.Colors.Snake,
		"apple":      c.Colors.Apple,
		"text":       c.Colors.Text,
	}
	for _, name := range []string{"background", "border", "snake", "apple", "text"} {
		if _, err := colorful.Hex(colors[name]); err != nil {
			return fmt.Errorf("config: %w for %s: %q", ErrBadColor, name, colors[name])
		}
	}
	return nil
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultSnakeYAML...)
}

// DefaultConfig returns the default configuration.
// It matches defaults/snake.yaml.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:    40,
			Height:   20,
			CellSize: 20,
		},
		Snake: SnakeConfig{
			Initial:   []PointConfig{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
			Direction: PointConfig{X: 1, Y: 0},
		},
		Apple: AppleConfig{
			Initial: PointConfig{X: 10, Y: 10},
		},
		Scoring: ScoringConfig{
			PerApple: 50,
		},
		Timing: TimingConfig{
			TickPeriod: 100 * time.Millisecond,
		},
		Colors: ColorsConfig{
			Background: "#5b8dde",
			Border:     "#000000",
			Snake:      "#36ff5a",
			Apple:      "#c40000",
			Text:       "#000000",
		},
		HUD: HUDConfig{
			FontSize: 20,
			ScoreX:   10,
			ScoreY:   390,
		},
	}
}

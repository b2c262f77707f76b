package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

// isolate points HOME and the working directory at an empty temp dir so
// only the embedded defaults are visible.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefaultConfig(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultRules(t *testing.T) {
	if got := DefaultConfig().Rules(); !reflect.DeepEqual(got, snake.DefaultRules()) {
		t.Errorf("Rules() = %+v, expected %+v", got, snake.DefaultRules())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "fast.yaml")
	writeFile(t, path, "timing:\n  tick_period: 50ms\nscoring:\n  per_apple: 10\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Timing.TickPeriod != 50*time.Millisecond {
		t.Errorf("TickPeriod = %s, expected 50ms", cfg.Timing.TickPeriod)
	}
	if cfg.Scoring.PerApple != 10 {
		t.Errorf("PerApple = %d, expected 10", cfg.Scoring.PerApple)
	}
	if cfg.Board != DefaultConfig().Board {
		t.Errorf("Board should keep defaults, got %+v", cfg.Board)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalPath), "scoring:\n  per_apple: 7\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scoring.PerApple != 7 {
		t.Errorf("local config not used: PerApple = %d", cfg.Scoring.PerApple)
	}

	writeFile(t, filepath.Join(dir, ".snake", "config.yaml"), "scoring:\n  per_apple: 9\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scoring.PerApple != 9 {
		t.Errorf("user config should win over local: PerApple = %d", cfg.Scoring.PerApple)
	}
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".snake", "config.yaml"), "board: [not, a, map\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("broken user config should fall through to defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "timing: {tick_period: soon}\n")
	if _, err := Load(bad); err == nil {
		t.Error("unparseable custom file should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero cell", func(c *Config) { c.Board.CellSize = 0 }, ErrBadCellSize},
		{"zero period", func(c *Config) { c.Timing.TickPeriod = 0 }, ErrBadTickPeriod},
		{"zero font", func(c *Config) { c.HUD.FontSize = 0 }, ErrBadFontSize},
		{"bad color", func(c *Config) { c.Colors.Apple = "red" }, ErrBadColor},
		{"apple off board", func(c *Config) { c.Apple.Initial = PointConfig{X: 99, Y: 0} }, snake.ErrAppleOutOfBounds},
		{"empty snake", func(c *Config) { c.Snake.Initial = nil }, snake.ErrEmptySnake},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("round trip changed config:\n%s", data)
	}
}

// snake is a keyboard-driven Snake game for the terminal, SSH and a
// desktop window.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake window             - Play in a desktop window
//	snake serve              - Start SSH server for remote play
//	snake render             - Replay moves headlessly and save a PNG
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom YAML config
//	--seed <value>      - Set RNG seed for reproducible apples
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-canvas/internal/config"
	"github.com/vovakirdan/snake-canvas/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game on a 40x20 board",
	Long: `Snake moves one cell every tick. Eat apples to grow and score,
and avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  render   - Replay moves headlessly and save the board as PNG
  config   - Print the effective configuration

Examples:
  snake play
  snake window --seed 42
  snake serve --ssh :2222
  snake render --moves RRRDDD --out board.png
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig resolves the effective configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// runtimeConfig combines the global flags with the configured tick period.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickPeriod = cfg.Timing.TickPeriod
	rc.Seed = flagSeed
	return rc
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned func closes the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn
}

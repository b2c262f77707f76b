package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-canvas/internal/platform/tui"
	"github.com/vovakirdan/snake-canvas/internal/render"
	"github.com/vovakirdan/snake-canvas/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Enter        - Start
  Arrows/WASD  - Steer
  P/Space      - Pause/Resume
  R            - Restart
  Ctrl+S       - Save a PNG screenshot to ~/.snake/screenshots
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Logs are discarded unless --log-file is set.

Examples:
  snake play
  snake play --seed 7
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	style, err := render.StyleFrom(cfg)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := newLogger("snake", io.Discard)
	defer closeLog()

	rc := runtimeConfig(cfg)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	var shots string
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		shots = filepath.Join(home, ".snake", "screenshots")
	}

	ctrl := session.FromConfig(cfg, rc.ResolveSeed(), logger)
	if err := tui.Run(ctrl, style, tui.Options{Screen: rc, ScreenshotDir: shots}); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}

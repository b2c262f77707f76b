package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-canvas/internal/platform/gui"
	"github.com/vovakirdan/snake-canvas/internal/render"
	"github.com/vovakirdan/snake-canvas/internal/session"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the 800x400 board in a window.

Click Start Game, Pause/Resume and Restart, or use the keyboard:
Enter starts, P/Space pauses, R restarts, Q/Esc quits, arrows/WASD steer.`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	style, err := render.StyleFrom(cfg)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := newLogger("snake", os.Stderr)
	defer closeLog()

	rc := runtimeConfig(cfg)
	ctrl := session.FromConfig(cfg, rc.ResolveSeed(), logger)
	if err := gui.Run(ctrl, style, logger); err != nil {
		closeLog()
		fail("running window: %v", err)
	}
}

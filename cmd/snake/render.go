package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-canvas/internal/config"
	"github.com/vovakirdan/snake-canvas/internal/render"
	"github.com/vovakirdan/snake-canvas/internal/session"
)

var (
	flagTicks int
	flagMoves string
	flagOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Replay moves headlessly and save the board as PNG",
	Long: `Start a game, feed it one move per tick and write the final board.

Moves are letters, one per tick: U, D, L, R steer and '.' keeps going.
After the moves run out the snake keeps going until --ticks is reached.
The replay stops early when the game ends.

Examples:
  snake render --out start.png
  snake render --moves RRRRRRRRDDDDDDDDDD --seed 1 --out board.png
  snake render --ticks 50 --out - > board.png`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Total ticks to run (default: one per move)")
	renderCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves, one letter per tick: U D L R .")
	renderCmd.Flags().StringVar(&flagOut, "out", "snake.png", "Output PNG path, - for stdout")
}

// moveKeys maps move letters to the key names the input adapter reads.
var moveKeys = map[rune]string{
	'U': "up",
	'D': "down",
	'L': "left",
	'R': "right",
	'.': "",
}

// parseMoves turns a move string into per-tick key names.
func parseMoves(s string) ([]string, error) {
	keys := make([]string, 0, len(s))
	for i, r := range strings.ToUpper(s) {
		k, ok := moveKeys[r]
		if !ok {
			return nil, fmt.Errorf("move %d: unknown move %q", i+1, r)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// replay runs a fresh game through moves and then plain ticks until
// ticks steps have run or the game ends.
func replay(cfg config.Config, seed int64, moves []string, ticks int, logger *log.Logger) *session.Controller {
	ctrl := session.FromConfig(cfg, seed, logger)
	ctrl.Start()

	ticks = max(ticks, len(moves))
	for i := range ticks {
		if i < len(moves) && moves[i] != "" {
			ctrl.Key(moves[i])
		}
		if !ctrl.Tick(ctrl.Generation()) {
			break
		}
	}
	ctrl.Close()
	return ctrl
}

func runRender(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	style, err := render.StyleFrom(cfg)
	if err != nil {
		fail("%v", err)
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := newLogger("snake", os.Stderr)
	defer closeLog()

	seed := runtimeConfig(cfg).ResolveSeed()
	ctrl := replay(cfg, seed, moves, flagTicks, logger)
	game := ctrl.Game()

	var w io.Writer = os.Stdout
	if flagOut != "-" {
		f, createErr := os.Create(flagOut)
		if createErr != nil {
			closeLog()
			fail("cannot create output: %v", createErr)
		}
		defer f.Close()
		w = f
	}

	if err := render.RenderPNG(w, render.SceneOf(game), style); err != nil {
		closeLog()
		fail("%v", err)
	}

	logger.Info("rendered",
		"out", flagOut,
		"ticks", game.Ticks(),
		"status", game.Status(),
		"score", game.Score(),
		"seed", seed,
	)
}

// Package gui hosts the game in an Ebiten window: the board as pixels,
// with clickable controls underneath.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/snake-canvas/internal/core"
	"github.com/vovakirdan/snake-canvas/internal/games/snake"
	"github.com/vovakirdan/snake-canvas/internal/render"
	"github.com/vovakirdan/snake-canvas/internal/session"
)

const (
	barHeight    = 60 // control strip under the board
	buttonWidth  = 160
	buttonHeight = 40
	labelSize    = 20
)

var (
	windowBg    = color.RGBA{0x20, 0x20, 0x28, 0xff}
	buttonFill  = color.RGBA{0x06, 0xb6, 0xd4, 0xff}
	buttonLabel = color.White
)

// button is a clickable control.
type button struct {
	label  string
	rect   core.Rect
	action core.Action
}

// Game implements ebiten.Game for one snake session.
type Game struct {
	ctrl   *session.Controller
	style  render.Style
	font   *text.GoTextFaceSource
	logger *log.Logger

	keys []ebiten.Key
	quit bool
}

// NewGame creates a window host for ctrl drawing with st.
// A nil logger discards output.
func NewGame(ctrl *session.Controller, st render.Style, logger *log.Logger) (*Game, error) {
	src, err := loadFont()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{ctrl: ctrl, style: st, font: src, logger: logger}, nil
}

// Layout fixes the logical screen to the board plus the control strip.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.style.Width, g.style.Height + barHeight
}

// Update handles input and advances the game by one frame.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if a, ok := actionKeys[k]; ok {
			g.do(a)
			continue
		}
		g.ctrl.Key(FromEbiten(k))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for _, b := range g.buttons() {
			if b.rect.Contains(x, y) {
				g.logger.Debug("button clicked", "label", b.label)
				g.do(b.action)
				break
			}
		}
	}

	if g.quit {
		g.ctrl.Close()
		return ebiten.Termination
	}

	g.ctrl.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) do(a core.Action) {
	switch a {
	case core.ActionStart:
		g.ctrl.Start()
	case core.ActionPause:
		g.ctrl.TogglePause()
	case core.ActionRestart:
		g.ctrl.Restart()
	case core.ActionQuit:
		g.quit = true
	}
}

// buttons returns the controls visible in the current state.
func (g *Game) buttons() []button {
	switch g.ctrl.Status() {
	case snake.StatusNotStarted:
		return []button{{"Start Game", g.centered(g.style.Height / 2), core.ActionStart}}
	case snake.StatusRunning:
		return []button{{"Pause", g.barButton(), core.ActionPause}}
	case snake.StatusPaused:
		return []button{{"Resume", g.barButton(), core.ActionPause}}
	case snake.StatusGameOver:
		return []button{{"Restart", g.centered(g.style.Height/2 + 60), core.ActionRestart}}
	}
	return nil
}

// centered returns a button rect centered horizontally around y.
func (g *Game) centered(y int) core.Rect {
	return core.NewRect((g.style.Width-buttonWidth)/2, y-buttonHeight/2, buttonWidth, buttonHeight)
}

// barButton returns the rect of the control in the strip under the board.
func (g *Game) barButton() core.Rect {
	return g.centered(g.style.Height + barHeight/2)
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBg)
	c := &Canvas{dst: screen, font: g.font}

	switch g.ctrl.Status() {
	case snake.StatusRunning, snake.StatusPaused:
		render.Draw(c, render.SceneOf(g.ctrl.Game()), g.style)
	case snake.StatusGameOver:
		top := core.NewRect(0, g.style.Height/2-80, g.style.Width, 40)
		c.CenterText("Game Over", top, 36, color.White)
		score := core.NewRect(0, g.style.Height/2-30, g.style.Width, 30)
		c.CenterText(fmt.Sprintf("Your score: %d", g.ctrl.Game().Score()), score, labelSize, color.White)
	}

	for _, b := range g.buttons() {
		c.FillRect(b.rect, buttonFill)
		c.CenterText(b.label, b.rect, labelSize, buttonLabel)
	}
}

// Run opens the window and blocks until it is closed.
func Run(ctrl *session.Controller, st render.Style, logger *log.Logger) error {
	g, err := NewGame(ctrl, st, logger)
	if err != nil {
		return err
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Snake")

	err = ebiten.RunGame(g)
	ctrl.Close()
	g.logger.Info("window closed", "score", ctrl.Game().Score())
	return err
}

// Package render draws a snake board onto any 2D surface.
// Draw is stateless: hosts call it with the current scene whenever the
// state changes, against whichever Canvas their platform provides.
package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/snake-canvas/internal/config"
	"github.com/vovakirdan/snake-canvas/internal/core"
	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

// Canvas is a pixel-addressed drawing surface.
type Canvas interface {
	// FillRect paints the rectangle.
	FillRect(r core.Rect, c color.Color)
	// StrokeRect outlines the rectangle with a one-pixel line.
	StrokeRect(r core.Rect, c color.Color)
	// FillText draws text with its baseline at (x, y).
	FillText(text string, x, y int, size float64, c color.Color)
}

// Scene is what gets drawn.
type Scene struct {
	Snake []snake.Point
	Apple snake.Point
	Score int
}

// SceneOf captures the drawable part of a game.
func SceneOf(g *snake.Game) Scene {
	return Scene{
		Snake: g.Snake(),
		Apple: g.Apple(),
		Score: g.Score(),
	}
}

// Palette holds one color per drawn element.
type Palette struct {
	Background color.Color
	Border     color.Color
	Snake      color.Color
	Apple      color.Color
	Text       color.Color
}

// Style fixes the surface size, cell scale, colors and score placement.
type Style struct {
	Width    int // pixels
	Height   int // pixels
	CellSize int // pixels per cell side
	Palette  Palette
	FontSize float64
	ScoreX   int
	ScoreY   int // text baseline
}

// DefaultStyle is the 800x400 board with 20px cells.
func DefaultStyle() Style {
	st, err := StyleFrom(config.DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("render: default style: %v", err))
	}
	return st
}

// StyleFrom builds a Style from configuration.
func StyleFrom(cfg config.Config) (Style, error) {
	var p Palette
	colors := []struct {
		hex string
		dst *color.Color
	}{
		{cfg.Colors.Background, &p.Background},
		{cfg.Colors.Border, &p.Border},
		{cfg.Colors.Snake, &p.Snake},
		{cfg.Colors.Apple, &p.Apple},
		{cfg.Colors.Text, &p.Text},
	}
	for _, c := range colors {
		parsed, err := ParseColor(c.hex)
		if err != nil {
			return Style{}, err
		}
		*c.dst = parsed
	}

	return Style{
		Width:    cfg.Board.Width * cfg.Board.CellSize,
		Height:   cfg.Board.Height * cfg.Board.CellSize,
		CellSize: cfg.Board.CellSize,
		Palette:  p,
		FontSize: cfg.HUD.FontSize,
		ScoreX:   cfg.HUD.ScoreX,
		ScoreY:   cfg.HUD.ScoreY,
	}, nil
}

// ParseColor parses "#rrggbb" into an opaque RGBA color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats any color as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}

// Bounds is the whole surface.
func (st Style) Bounds() core.Rect {
	return core.NewRect(0, 0, st.Width, st.Height)
}

// CellRect returns the pixel rectangle of a grid cell.
func (st Style) CellRect(p snake.Point) core.Rect {
	return core.NewRect(p.X*st.CellSize, p.Y*st.CellSize, st.CellSize, st.CellSize)
}

// ScoreText is the HUD label.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Draw paints the scene: background, border, snake, apple, score.
func Draw(c Canvas, s Scene, st Style) {
	c.FillRect(st.Bounds(), st.Palette.Background)
	c.StrokeRect(st.Bounds(), st.Palette.Border)

	for _, seg := range s.Snake {
		c.FillRect(st.CellRect(seg), st.Palette.Snake)
	}
	c.FillRect(st.CellRect(s.Apple), st.Palette.Apple)

	c.FillText(ScoreText(s.Score), st.ScoreX, st.ScoreY, st.FontSize, st.Palette.Text)
}

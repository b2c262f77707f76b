package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/snake-canvas/internal/core"
)

// loadFont parses the embedded Go Regular face.
func loadFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}
	return src, nil
}

// Canvas draws render calls onto an Ebiten image.
type Canvas struct {
	dst  *ebiten.Image
	font *text.GoTextFaceSource
}

// FillRect paints the rectangle.
func (c *Canvas) FillRect(r core.Rect, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// StrokeRect draws a one-pixel outline just inside the rectangle.
func (c *Canvas) StrokeRect(r core.Rect, col color.Color) {
	vector.StrokeRect(c.dst,
		float32(r.X)+0.5, float32(r.Y)+0.5,
		float32(r.W)-1, float32(r.H)-1,
		1, col, false)
}

// FillText draws text with its baseline at (x, y).
func (c *Canvas) FillText(s string, x, y int, size float64, col color.Color) {
	face := &text.GoTextFace{Source: c.font, Size: size}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, face, op)
}

// CenterText draws text horizontally and vertically centered in r.
func (c *Canvas) CenterText(s string, r core.Rect, size float64, col color.Color) {
	face := &text.GoTextFace{Source: c.font, Size: size}
	w, h := text.Measure(s, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.X)+(float64(r.W)-w)/2, float64(r.Y)+(float64(r.H)-h)/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, face, op)
}

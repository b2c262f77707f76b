package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/snake-canvas/internal/core"
)

var (
	regularOnce sync.Once
	regularFont *sfnt.Font
	regularErr  error
)

// regular returns the parsed Go Regular font, parsing it once.
func regular() (*sfnt.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = opentype.Parse(goregular.TTF)
	})
	return regularFont, regularErr
}

// Raster is a Canvas backed by an in-memory RGBA image.
type Raster struct {
	img   *image.RGBA
	faces map[float64]font.Face
}

// NewRaster allocates a width x height image.
func NewRaster(width, height int) *Raster {
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		faces: make(map[float64]font.Face),
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// FillRect paints the rectangle, clipped to the image.
func (r *Raster) FillRect(rect core.Rect, c color.Color) {
	dst := image.Rect(rect.X, rect.Y, rect.Right(), rect.Bottom())
	draw.Draw(r.img, dst, image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeRect draws a one-pixel outline just inside the rectangle.
func (r *Raster) StrokeRect(rect core.Rect, c color.Color) {
	if rect.Empty() {
		return
	}
	r.FillRect(core.NewRect(rect.X, rect.Y, rect.W, 1), c)
	r.FillRect(core.NewRect(rect.X, rect.Bottom()-1, rect.W, 1), c)
	r.FillRect(core.NewRect(rect.X, rect.Y, 1, rect.H), c)
	r.FillRect(core.NewRect(rect.Right()-1, rect.Y, 1, rect.H), c)
}

// FillText draws text in Go Regular with its baseline at (x, y).
// Text is skipped if the font cannot be loaded.
func (r *Raster) FillText(text string, x, y int, size float64, c color.Color) {
	face, err := r.face(size)
	if err != nil {
		return
	}
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func (r *Raster) face(size float64) (font.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	fnt, err := regular()
	if err != nil {
		return nil, fmt.Errorf("render: cannot parse font: %w", err)
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: cannot create face: %w", err)
	}
	r.faces[size] = f
	return f, nil
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("render: cannot encode png: %w", err)
	}
	return nil
}

// RenderPNG draws the scene onto a fresh raster and encodes it.
func RenderPNG(w io.Writer, s Scene, st Style) error {
	r := NewRaster(st.Width, st.Height)
	Draw(r, s, st)
	return r.EncodePNG(w)
}

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/vovakirdan/snake-canvas/internal/config"
	"github.com/vovakirdan/snake-canvas/internal/core"
	"github.com/vovakirdan/snake-canvas/internal/games/snake"
)

type call struct {
	op   string
	rect core.Rect
	text string
	x, y int
	size float64
	c    color.Color
}

// recorder is a Canvas that records draw calls.
type recorder struct {
	calls []call
}

func (r *recorder) FillRect(rect core.Rect, c color.Color) {
	r.calls = append(r.calls, call{op: "fill", rect: rect, c: c})
}

func (r *recorder) StrokeRect(rect core.Rect, c color.Color) {
	r.calls = append(r.calls, call{op: "stroke", rect: rect, c: c})
}

func (r *recorder) FillText(text string, x, y int, size float64, c color.Color) {
	r.calls = append(r.calls, call{op: "text", text: text, x: x, y: y, size: size, c: c})
}

func testScene() Scene {
	return Scene{
		Snake: []snake.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		Apple: snake.Point{X: 10, Y: 10},
		Score: 150,
	}
}

func TestDefaultStyle(t *testing.T) {
	st := DefaultStyle()

	if st.Width != 800 || st.Height != 400 || st.CellSize != 20 {
		t.Errorf("style = %dx%d cell %d, expected 800x400 cell 20", st.Width, st.Height, st.CellSize)
	}
	if st.Palette.Snake != (color.RGBA{0x36, 0xff, 0x5a, 0xff}) {
		t.Errorf("snake color = %v", st.Palette.Snake)
	}
	if st.FontSize != 20 || st.ScoreX != 10 || st.ScoreY != 390 {
		t.Errorf("score placement = %g@(%d,%d)", st.FontSize, st.ScoreX, st.ScoreY)
	}
}

func TestDrawCallOrder(t *testing.T) {
	st := DefaultStyle()
	rec := &recorder{}
	Draw(rec, testScene(), st)

	expected := []call{
		{op: "fill", rect: core.NewRect(0, 0, 800, 400), c: st.Palette.Background},
		{op: "stroke", rect: core.NewRect(0, 0, 800, 400), c: st.Palette.Border},
		{op: "fill", rect: core.NewRect(40, 0, 20, 20), c: st.Palette.Snake},
		{op: "fill", rect: core.NewRect(20, 0, 20, 20), c: st.Palette.Snake},
		{op: "fill", rect: core.NewRect(0, 0, 20, 20), c: st.Palette.Snake},
		{op: "fill", rect: core.NewRect(200, 200, 20, 20), c: st.Palette.Apple},
		{op: "text", text: "Score: 150", x: 10, y: 390, size: 20, c: st.Palette.Text},
	}

	if len(rec.calls) != len(expected) {
		t.Fatalf("got %d calls, expected %d: %+v", len(rec.calls), len(expected), rec.calls)
	}
	for i := range expected {
		if rec.calls[i] != expected[i] {
			t.Errorf("call %d = %+v, expected %+v", i, rec.calls[i], expected[i])
		}
	}
}

func TestRasterPixels(t *testing.T) {
	st := DefaultStyle()
	r := NewRaster(st.Width, st.Height)
	Draw(r, testScene(), st)
	img := r.Image()

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"border bottom-left", 0, 399, st.Palette.Border},
		{"border right", 799, 200, st.Palette.Border},
		{"head", 50, 10, st.Palette.Snake},
		{"tail", 10, 10, st.Palette.Snake},
		{"apple", 210, 210, st.Palette.Apple},
		{"background", 400, 100, st.Palette.Background},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRasterDrawsScoreText(t *testing.T) {
	st := DefaultStyle()
	r := NewRaster(st.Width, st.Height)
	Draw(r, testScene(), st)
	img := r.Image()

	// Some pixel in the text band must differ from the background.
	found := false
	for y := st.ScoreY - 16; y < st.ScoreY && !found; y++ {
		for x := st.ScoreX; x < st.ScoreX+100; x++ {
			if img.RGBAAt(x, y) != st.Palette.Background {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("score text was not drawn")
	}
}

func TestRenderPNG(t *testing.T) {
	st := DefaultStyle()
	var buf bytes.Buffer
	if err := RenderPNG(&buf, testScene(), st); err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Errorf("png size = %dx%d, expected 800x400", b.Dx(), b.Dy())
	}
}

func TestStyleFromRejectsBadColor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Colors.Snake = "green"
	if _, err := StyleFrom(cfg); err == nil {
		t.Error("StyleFrom() should fail on a non-hex color")
	}
}

func TestHex(t *testing.T) {
	c, err := ParseColor("#5b8dde")
	if err != nil {
		t.Fatal(err)
	}
	if got := Hex(c); got != "#5b8dde" {
		t.Errorf("Hex() = %q, expected #5b8dde", got)
	}
}

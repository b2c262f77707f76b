package tui

import (
	"image/color"

	"github.com/vovakirdan/snake-canvas/internal/core"
	"github.com/vovakirdan/snake-canvas/internal/render"
)

// ScreenCanvas draws pixel-addressed render calls onto a character screen.
// One board cell becomes two columns and one row, which keeps cells
// roughly square in a terminal font.
type ScreenCanvas struct {
	screen   *core.Screen
	cellSize int
}

// NewScreenCanvas wraps screen for boards with the given pixel cell size.
func NewScreenCanvas(screen *core.Screen, cellSize int) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, cellSize: max(cellSize, 1)}
}

// ScreenSize returns the character size of a board drawn with st.
func ScreenSize(st render.Style) (cols, rows int) {
	cs := max(st.CellSize, 1)
	return ceilDiv(st.Width*2, cs), ceilDiv(st.Height, cs)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (c *ScreenCanvas) col(px int) int { return px * 2 / c.cellSize }
func (c *ScreenCanvas) row(py int) int { return py / c.cellSize }

// cells converts a pixel rectangle to the character cells it covers.
func (c *ScreenCanvas) cells(r core.Rect) core.Rect {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1 := ceilDiv(r.Right()*2, c.cellSize)
	y1 := ceilDiv(r.Bottom(), c.cellSize)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect paints the covered cells' background.
func (c *ScreenCanvas) FillRect(r core.Rect, col color.Color) {
	c.screen.FillRect(c.cells(r), core.Cell{Rune: ' ', Bg: hexColor(col)})
}

// StrokeRect outlines the covered cells with box-drawing runes.
func (c *ScreenCanvas) StrokeRect(r core.Rect, col color.Color) {
	c.screen.DrawBox(c.cells(r), hexColor(col))
}

// FillText writes text on the row holding the baseline pixel. Size is
// ignored; terminals have one font size.
func (c *ScreenCanvas) FillText(text string, x, y int, _ float64, col color.Color) {
	c.screen.DrawText(c.col(x), c.row(max(y-1, 0)), text, hexColor(col))
}

func hexColor(c color.Color) core.Color {
	return core.Color(render.Hex(c))
}

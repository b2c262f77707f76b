package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-canvas/internal/core"
)

// cellStyle is the color pair of a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache builds lipgloss styles on demand for one renderer.
// SSH sessions each have their own renderer and color profile.
type styleCache struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

func newStyleCache(r *lipgloss.Renderer) *styleCache {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &styleCache{renderer: r, styles: make(map[cellStyle]lipgloss.Style)}
}

func (c *styleCache) get(k cellStyle) lipgloss.Style {
	if st, ok := c.styles[k]; ok {
		return st
	}
	st := c.renderer.NewStyle()
	if k.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(k.bg))
	}
	c.styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	return newStyleCache(r).render(s)
}

func (c *styleCache) render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(c.get(start).Render(run.String()))
		}
	}
	return sb.String()
}

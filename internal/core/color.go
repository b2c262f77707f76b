package core

// Color is a cell color in "#rrggbb" form. The empty Color means the
// terminal default.
type Color string

// ColorDefault leaves the terminal color untouched.
const ColorDefault Color = ""

// Cell is one character position on a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blankCell is what Clear writes.
var blankCell = Cell{Rune: ' '}

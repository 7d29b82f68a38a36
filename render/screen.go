package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pbert/board"
)

// Screen layout
const (
	GridX     = 2 // left margin
	GridY     = 2 // first grid row, below the title
	CellWidth = 3 // " 0 " per cell
)

const (
	title    = "pbert: light them all or none"
	helpText = "arrows/hjkl move  esc/q quit  ctrl+s mute"
)

// ScreenRenderer draws snapshots on a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewScreenRenderer creates a renderer using the default theme
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		theme:  DefaultTheme(),
	}
}

// CellOrigin returns the screen column and row of the glyph for a grid cell
func CellOrigin(row, col int) (x, y int) {
	return GridX + col*CellWidth + CellWidth/2, GridY + row
}

// Render clears the screen and draws title, grid, status and help
func (r *ScreenRenderer) Render(s board.Snapshot, st Status) {
	r.screen.Clear()

	r.drawText(GridX, 0, r.theme.Status, title)
	r.drawGrid(s)

	statusY := GridY + s.Topology.Height + 1
	r.drawText(GridX, statusY, r.theme.Status, statusLine(s, st))

	switch {
	case s.Won:
		r.drawText(GridX, statusY+1, r.theme.Victory, "VICTORY!")
	case st.Message != "":
		r.drawText(GridX, statusY+1, r.theme.Status, st.Message)
	}

	_, height := r.screen.Size()
	helpY := statusY + 3
	if height-1 > helpY {
		helpY = height - 1
	}
	r.drawText(GridX, helpY, r.theme.Help, helpText)

	r.screen.Show()
}

// statusLine puts the mute marker and counters ahead of the location, which clips first on narrow terminals
func statusLine(s board.Snapshot, st Status) string {
	var b strings.Builder
	if st.Muted {
		b.WriteString("[muted]  ")
	}
	fmt.Fprintf(&b, "lit: %d/%d  moves: %d  Token location: (%d, %d)",
		s.Lit(), s.Topology.Size(), s.Moves, s.Cursor.Col, s.Cursor.Row)
	return b.String()
}

func (r *ScreenRenderer) drawGrid(s board.Snapshot) {
	for row := 0; row < s.Topology.Height; row++ {
		for col := 0; col < s.Topology.Width; col++ {
			lit := s.At(row, col)
			style := r.theme.Unlit
			if lit {
				style = r.theme.Lit
			}
			if s.Cursor.Row == row && s.Cursor.Col == col {
				style = style.Reverse(true)
			}

			x := GridX + col*CellWidth
			y := GridY + row
			for i := 0; i < CellWidth; i++ {
				ch := ' '
				if i == CellWidth/2 {
					ch = glyph(lit)
				}
				r.screen.SetContent(x+i, y, ch, nil, style)
			}
		}
	}
}

func (r *ScreenRenderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

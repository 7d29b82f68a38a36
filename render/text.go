package render

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lixenwraith/pbert/board"
)

// Text renders a snapshot as plain lines:
// the token location as (x, y) with x the column and y the row,
// one line of glyphs per grid row, then VICTORY! when won
func Text(s board.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Token location: (%d, %d)\n", s.Cursor.Col, s.Cursor.Row)
	for _, row := range s.Rows() {
		for _, lit := range row {
			b.WriteRune(glyph(lit))
		}
		b.WriteByte('\n')
	}
	if s.Won {
		b.WriteString("VICTORY!\n")
	}
	return b.String()
}

func glyph(lit bool) rune {
	if lit {
		return GlyphLit
	}
	return GlyphUnlit
}

// TextRenderer writes Text output for each frame
type TextRenderer struct {
	w   io.Writer
	eol string
}

// NewTextRenderer creates a renderer writing to w
// Raw-mode terminals need "\r\n" line endings; pass rawMode accordingly
func NewTextRenderer(w io.Writer, rawMode bool) *TextRenderer {
	eol := "\n"
	if rawMode {
		eol = "\r\n"
	}
	return &TextRenderer{w: w, eol: eol}
}

// Render writes the snapshot followed by any status message
func (r *TextRenderer) Render(s board.Snapshot, st Status) {
	out := Text(s)
	if st.Message != "" {
		out += st.Message + "\n"
	}
	if r.eol != "\n" {
		out = strings.ReplaceAll(out, "\n", r.eol)
	}
	if _, err := io.WriteString(r.w, out); err != nil {
		log.Printf("text render failed: %v", err)
	}
}

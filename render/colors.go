package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the board
var (
	RgbLit        = tcell.NewRGBColor(255, 220, 80)  // Warm yellow
	RgbUnlit      = tcell.NewRGBColor(90, 90, 110)   // Muted slate
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelp       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbVictory    = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
)

// Glyphs used by both renderers
const (
	GlyphLit   = '0'
	GlyphUnlit = 'X'
)

// Theme holds the styles used by ScreenRenderer
type Theme struct {
	Lit     tcell.Style
	Unlit   tcell.Style
	Status  tcell.Style
	Help    tcell.Style
	Victory tcell.Style
}

// DefaultTheme returns the default styles
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Theme{
		Lit:     base.Foreground(RgbLit).Bold(true),
		Unlit:   base.Foreground(RgbUnlit),
		Status:  base.Foreground(RgbStatusBar),
		Help:    base.Foreground(RgbHelp),
		Victory: base.Foreground(RgbVictory).Bold(true),
	}
}

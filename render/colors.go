package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pulopulo/engine"
)

// Background is the board background color
var Background = tcell.ColorBlack

// PaletteColors maps puyo colors to terminal colors
var PaletteColors = [...]tcell.Color{
	engine.Red:    tcell.ColorRed,
	engine.Green:  tcell.ColorGreen,
	engine.Blue:   tcell.ColorBlue,
	engine.Purple: tcell.ColorPurple,
	engine.Yellow: tcell.ColorYellow,
}

// PuyoStyle returns the glyph style for a puyo color
func PuyoStyle(c engine.Color) tcell.Style {
	fg := tcell.ColorWhite
	if int(c) < len(PaletteColors) {
		fg = PaletteColors[c]
	}
	return tcell.StyleDefault.Foreground(fg).Background(Background)
}

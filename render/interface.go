package render

import "github.com/lixenwraith/pulopulo/engine"

// Surface is the drawing target of one frame
// Coordinates are screen cells; board x is doubled by the caller
type Surface interface {
	Init() error
	Fini()
	Clear()
	DrawBorder(width, height int)
	DrawGlyph(x, y int, color engine.Color, glyph rune)
	DrawText(x, y int, text string)
	MoveCursor(x, y int)
	Show()
	// Sync repaints everything after the terminal was resized
	Sync()
}

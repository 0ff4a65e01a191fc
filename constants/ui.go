package constants

// Board border characters
const (
	BorderTopLeft     = '/'
	BorderTopRight    = '\\'
	BorderBottomLeft  = '\\'
	BorderBottomRight = '/'
	BorderVertical    = '|'
	BorderHorizontal  = '-'
)

// PuyoGlyph is drawn for every puyo (unicode large circle)
const PuyoGlyph = '◯'

// CellWidth is the horizontal screen spacing per board column
const CellWidth = 2

// Status text
const (
	TextGameOver = "GAME OVER"
	TextQuitHint = "q: quit"
)

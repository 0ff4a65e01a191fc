package render

import (
	"github.com/lixenwraith/pulopulo/constants"
	"github.com/lixenwraith/pulopulo/engine"
)

// DrawBoard renders one frame of the game state onto surface
func DrawBoard(s Surface, g *engine.GameState) {
	s.Clear()
	s.DrawBorder(constants.BoardX*constants.CellWidth, constants.BoardY)

	for _, p := range g.Pieces.Puyos() {
		// rows above the board are not drawn
		if p.Pos.Y < 0 {
			continue
		}
		s.DrawGlyph(p.Pos.X*constants.CellWidth, p.Pos.Y, p.Color, constants.PuyoGlyph)
	}

	if g.Over {
		s.DrawText(0, constants.BoardY+1, constants.TextGameOver)
		s.DrawText(0, constants.BoardY+2, constants.TextQuitHint)
	}

	s.MoveCursor(constants.BoardX*constants.CellWidth, constants.BoardY)
	s.Show()
}

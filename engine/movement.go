package engine

// downOffset is the only offset whose blocked destination settles instead of rejecting
var downOffset = Offset(Down)

// CanMove checks every active puyo against its destination cell
// Straight-down moves settle each blocked puyo in place and keep checking;
// any other blocked direction rejects the whole move with no side effects
func (g *GameState) CanMove(offset Point, includeAnchor bool) bool {
	if offset != downOffset {
		for _, p := range g.Pieces.puyos {
			if !p.Active || (!includeAnchor && p.ID == g.anchorID) {
				continue
			}
			if g.Pieces.grid.At(p.Pos.Add(offset)).Blocked() {
				return false
			}
		}
		return true
	}

	for i := range g.Pieces.puyos {
		p := g.Pieces.puyos[i]
		if !p.Active || (!includeAnchor && p.ID == g.anchorID) {
			continue
		}
		if g.Pieces.grid.At(p.Pos.Add(offset)).Blocked() {
			g.Pieces.settle(i)
			g.Hooks.settled(g.Pieces.puyos[i])
		}
	}
	return true
}

// ApplyMove translates every still-active puyo by offset when CanMove allows it
// A puyo whose own destination became blocked during the check stays in place
// Returns false when the move was rejected
func (g *GameState) ApplyMove(offset Point) bool {
	if !g.CanMove(offset, true) {
		return false
	}
	for i := range g.Pieces.puyos {
		p := g.Pieces.puyos[i]
		if !p.Active {
			continue
		}
		if g.Pieces.grid.At(p.Pos.Add(offset)).Blocked() {
			continue
		}
		g.Pieces.translate(i, offset)
	}
	return true
}

// Move applies a unit move in dir
func (g *GameState) Move(dir Direction) bool {
	return g.ApplyMove(Offset(dir))
}

package engine

// spawnKick is the child displacement convention at spawn; the first clockwise
// turn moves the child from below the anchor to its right
var spawnKick = Point{X: 1, Y: 1}

// Rotate turns the child a quarter around the anchor
// The candidate displacement flips one sign of the previous one, alternating
// between the two conventions on each accepted turn, which walks the child
// below → right → above → left. Rejected silently when the destination is
// blocked, when the pair has split, or when the result would not be adjacent
func (g *GameState) Rotate(cw bool) bool {
	ai, aok := g.Anchor()
	ci, cok := g.Child()
	if !aok || !cok {
		return false
	}

	var candidate Point
	if g.kickToggle && cw {
		candidate = Point{X: -g.kick.X, Y: g.kick.Y}
	} else {
		candidate = Point{X: g.kick.X, Y: -g.kick.Y}
	}

	dest := g.Pieces.puyos[ci].Pos.Add(candidate)
	if !adjacent(g.Pieces.puyos[ai].Pos, dest) {
		return false
	}
	if !g.CanMove(candidate, false) {
		return false
	}

	g.Pieces.translate(ci, candidate)
	g.kickToggle = !g.kickToggle
	g.kick = candidate
	g.Hooks.rotated(g.Pieces.puyos[ci])
	return true
}

// RotationOffset returns the anchor to child vector while both are active
func (g *GameState) RotationOffset() (Point, bool) {
	ai, aok := g.Anchor()
	ci, cok := g.Child()
	if !aok || !cok {
		return Point{}, false
	}
	a, c := g.Pieces.puyos[ai].Pos, g.Pieces.puyos[ci].Pos
	return Point{X: c.X - a.X, Y: c.Y - a.Y}, true
}

func adjacent(a, b Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

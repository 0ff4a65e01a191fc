package engine

import "slices"

// Group is a cleared connected component
type Group struct {
	Color Color
	Cells []Point
}

// FindGroup returns the indices of the same-colored settled component containing start
// Active puyos never match; returns nil for an active or out-of-range start
func (s *PieceSet) FindGroup(start int) []int {
	if start < 0 || start >= len(s.puyos) || s.puyos[start].Active {
		return nil
	}
	visited := make([]bool, len(s.puyos))
	group := s.collectGroup(start, visited)
	slices.Sort(group)
	return group
}

// collectGroup flood-fills from start with an explicit stack, marking visited
func (s *PieceSet) collectGroup(start int, visited []bool) []int {
	color := s.puyos[start].Color
	visited[start] = true
	stack := []int{start}
	var group []int

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, cur)

		pos := s.puyos[cur].Pos
		for _, dir := range Directions {
			occ := s.grid.At(pos.Add(Offset(dir)))
			if occ.State != CellOccupied || visited[occ.Index] {
				continue
			}
			if s.puyos[occ.Index].Color != color {
				continue
			}
			visited[occ.Index] = true
			stack = append(stack, occ.Index)
		}
	}
	return group
}

// nextMatch returns the first settled component of at least minSize puyos
// Each puyo is expanded at most once per call
func (s *PieceSet) nextMatch(minSize int) ([]int, bool) {
	visited := make([]bool, len(s.puyos))
	for i := range s.puyos {
		if s.puyos[i].Active || visited[i] {
			continue
		}
		group := s.collectGroup(i, visited)
		if len(group) >= minSize {
			return group, true
		}
	}
	return nil, false
}

// ResolveMatches removes every settled component of at least minSize puyos
// Each component is removed in one batch and discovery restarts on the compacted set
// Calling it again without intervening moves removes nothing
func (s *PieceSet) ResolveMatches(minSize int) []Group {
	var cleared []Group
	for {
		indices, ok := s.nextMatch(minSize)
		if !ok {
			return cleared
		}

		g := Group{
			Color: s.puyos[indices[0]].Color,
			Cells: make([]Point, 0, len(indices)),
		}
		for _, i := range indices {
			g.Cells = append(g.Cells, s.puyos[i].Pos)
		}
		cleared = append(cleared, g)

		s.Remove(indices)
	}
}

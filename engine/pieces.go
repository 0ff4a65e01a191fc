package engine

import (
	"errors"
	"math/rand"

	"github.com/lixenwraith/pulopulo/constants"
)

// Sentinel errors
var (
	ErrPairActive   = errors.New("engine: falling pair still active")
	ErrSpawnBlocked = errors.New("engine: spawn cell occupied")
	ErrCellTaken    = errors.New("engine: cell not free")
	ErrBoardFull    = errors.New("engine: piece set at capacity")
)

// Puyo is a single colored piece on the board
type Puyo struct {
	ID     uint64
	Pos    Point
	Color  Color
	Active bool
}

// PieceSet is the ordered, compacted collection of all puyos on the board
// Indices shift on every removal; hold IDs across removals, not indices
type PieceSet struct {
	puyos  []Puyo
	grid   *Grid
	nextID uint64
}

// NewPieceSet creates an empty piece set with its occupancy grid
func NewPieceSet() *PieceSet {
	return &PieceSet{
		puyos: make([]Puyo, 0, constants.MaxPuyos),
		grid:  NewGrid(),
	}
}

// Grid returns the occupancy grid of settled puyos
func (s *PieceSet) Grid() *Grid {
	return s.grid
}

// Len returns the number of puyos on the board
func (s *PieceSet) Len() int {
	return len(s.puyos)
}

// At returns a copy of the puyo at index i
func (s *PieceSet) At(i int) Puyo {
	return s.puyos[i]
}

// Puyos returns a snapshot of the set in board order
func (s *PieceSet) Puyos() []Puyo {
	out := make([]Puyo, len(s.puyos))
	copy(out, s.puyos)
	return out
}

// IndexOf returns the current index of the puyo with id, or -1
func (s *PieceSet) IndexOf(id uint64) int {
	for i := range s.puyos {
		if s.puyos[i].ID == id {
			return i
		}
	}
	return -1
}

// AnyActive reports whether any puyo is still falling
func (s *PieceSet) AnyActive() bool {
	for i := range s.puyos {
		if s.puyos[i].Active {
			return true
		}
	}
	return false
}

// ActiveCount returns the number of falling puyos (0, 1 or 2)
func (s *PieceSet) ActiveCount() int {
	n := 0
	for i := range s.puyos {
		if s.puyos[i].Active {
			n++
		}
	}
	return n
}

// SpawnPair appends a new falling pair at the spawn cell, anchor above child
// Returns ErrPairActive while any puyo is active and ErrSpawnBlocked if either
// spawn cell holds a settled puyo; the set is unchanged on error
func (s *PieceSet) SpawnPair(rng *rand.Rand) (anchor, child int, err error) {
	if s.AnyActive() {
		return -1, -1, ErrPairActive
	}
	anchorPos := Point{X: constants.SpawnX, Y: constants.SpawnY}
	childPos := anchorPos.Add(Offset(Down))
	if s.grid.At(anchorPos).Blocked() || s.grid.At(childPos).Blocked() {
		return -1, -1, ErrSpawnBlocked
	}
	if len(s.puyos)+2 > constants.MaxPuyos {
		return -1, -1, ErrBoardFull
	}

	anchor = s.add(Puyo{Pos: anchorPos, Color: RandomColor(rng), Active: true})
	child = s.add(Puyo{Pos: childPos, Color: RandomColor(rng), Active: true})
	return anchor, child, nil
}

// Place appends a settled puyo at pos, used to build boards directly
func (s *PieceSet) Place(pos Point, color Color) (int, error) {
	if s.grid.At(pos).Blocked() {
		return -1, ErrCellTaken
	}
	if len(s.puyos) >= constants.MaxPuyos {
		return -1, ErrBoardFull
	}
	idx := s.add(Puyo{Pos: pos, Color: color})
	s.grid.mark(pos, idx)
	return idx, nil
}

// Remove deletes every listed index in one pass and compacts the set
// Indices refer to the layout before the call; duplicates and out-of-range
// indices are ignored. Returns the number of puyos removed
func (s *PieceSet) Remove(indices []int) int {
	if len(indices) == 0 {
		return 0
	}

	drop := make([]bool, len(s.puyos))
	n := 0
	for _, i := range indices {
		if i < 0 || i >= len(s.puyos) || drop[i] {
			continue
		}
		drop[i] = true
		n++
	}
	if n == 0 {
		return 0
	}

	kept := s.puyos[:0]
	for i, p := range s.puyos {
		if !drop[i] {
			kept = append(kept, p)
		}
	}
	s.puyos = kept
	s.reindex()
	return n
}

func (s *PieceSet) add(p Puyo) int {
	s.nextID++
	p.ID = s.nextID
	s.puyos = append(s.puyos, p)
	return len(s.puyos) - 1
}

// settle freezes puyo i in place and indexes its cell
func (s *PieceSet) settle(i int) {
	s.puyos[i].Active = false
	s.grid.mark(s.puyos[i].Pos, i)
}

func (s *PieceSet) translate(i int, offset Point) {
	s.puyos[i].Pos = s.puyos[i].Pos.Add(offset)
}

// reindex rebuilds the occupancy grid after compaction
func (s *PieceSet) reindex() {
	s.grid.reset()
	for i := range s.puyos {
		if !s.puyos[i].Active {
			s.grid.mark(s.puyos[i].Pos, i)
		}
	}
}

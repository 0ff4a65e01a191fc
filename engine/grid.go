package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/pulopulo/constants"
)

// CellState classifies a board cell for collision queries
type CellState uint8

const (
	CellFree CellState = iota
	CellWall
	CellOccupied
)

// Occupancy is the result of a cell query; Index is set only for CellOccupied
type Occupancy struct {
	State CellState
	Index int
}

// Blocked reports whether a puyo cannot enter the cell
func (o Occupancy) Blocked() bool {
	return o.State != CellFree
}

// cellStride separates rows in the cell key space, rows above the board are negative keys
const cellStride = 1 << 16

func cellKey(p Point) int {
	return p.Y*cellStride + p.X
}

// Grid answers occupancy queries for the fixed board
// Only settled puyos are indexed; active puyos never block
type Grid struct {
	cells *intmap.Map[int, int]
}

// NewGrid creates an empty grid sized for a full board
func NewGrid() *Grid {
	return &Grid{
		cells: intmap.New[int, int](constants.MaxPuyos),
	}
}

// IsWall reports whether (x, y) is a wall or floor cell
// There is no ceiling: rows above 0 are open
func IsWall(x, y int) bool {
	return x <= 0 || x >= constants.BoardX || y >= constants.BoardY
}

// IsOccupied classifies (x, y)
// O(1), no side effects
func (g *Grid) IsOccupied(x, y int) Occupancy {
	if IsWall(x, y) {
		return Occupancy{State: CellWall, Index: -1}
	}
	if idx, ok := g.cells.Get(cellKey(Point{X: x, Y: y})); ok {
		return Occupancy{State: CellOccupied, Index: idx}
	}
	return Occupancy{State: CellFree, Index: -1}
}

// At is IsOccupied for a Point
func (g *Grid) At(p Point) Occupancy {
	return g.IsOccupied(p.X, p.Y)
}

// Count returns the number of settled cells
func (g *Grid) Count() int {
	return g.cells.Len()
}

func (g *Grid) mark(p Point, idx int) {
	g.cells.Put(cellKey(p), idx)
}

func (g *Grid) reset() {
	g.cells.Clear()
}

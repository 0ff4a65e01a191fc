package constants

// Board geometry
const (
	// BoardX is the column index of the right wall; column 0 is the left wall
	BoardX = 6

	// BoardY is the row index of the floor; there is no ceiling row
	BoardY = 12

	// MaxPuyos bounds the piece set by board area
	MaxPuyos = BoardX * BoardY
)

// Spawn cell of the falling pair; the child spawns directly below the anchor
const (
	SpawnX = 4
	SpawnY = 1
)

// MatchSize is the minimum connected group size that is cleared
const MatchSize = 4

// ColorCount is the number of puyo colors in the palette
const ColorCount = 5

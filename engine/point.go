package engine

// Point is a board cell coordinate, y grows downward
type Point struct {
	X, Y int
}

// Add returns p translated by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Direction is a unit move on the board
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four neighbour directions in search order
var Directions = [...]Direction{Up, Down, Left, Right}

var directionOffsets = [...]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Offset returns the unit vector for dir
func Offset(dir Direction) Point {
	return directionOffsets[dir]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

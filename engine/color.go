package engine

import (
	"math/rand"

	"github.com/lixenwraith/pulopulo/constants"
)

// Color identifies one of the puyo palette entries
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Purple
	Yellow
)

// Palette is the fixed set of spawnable colors
var Palette = [constants.ColorCount]Color{Red, Green, Blue, Purple, Yellow}

// RandomColor draws a palette color uniformly from rng
func RandomColor(rng *rand.Rand) Color {
	return Palette[rng.Intn(len(Palette))]
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	case Yellow:
		return "yellow"
	}
	return "unknown"
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pulopulo/constants"
)

func place(t *testing.T, s *PieceSet, color Color, cells ...Point) {
	t.Helper()
	for _, p := range cells {
		_, err := s.Place(p, color)
		require.NoError(t, err, "place %v", p)
	}
}

func TestVerticalFourCleared(t *testing.T) {
	s := NewPieceSet()
	place(t, s, Red, Point{1, 1}, Point{1, 2}, Point{1, 3}, Point{1, 4})
	place(t, s, Blue, Point{2, 4})

	before := s.Len()
	groups := s.ResolveMatches(constants.MatchSize)

	require.Len(t, groups, 1)
	assert.Equal(t, Red, groups[0].Color)
	assert.ElementsMatch(t, []Point{{1, 1}, {1, 2}, {1, 3}, {1, 4}}, groups[0].Cells)
	assert.Equal(t, before-4, s.Len())
	assert.Equal(t, Blue, s.At(0).Color)
}

func TestThreeNotCleared(t *testing.T) {
	s := NewPieceSet()
	place(t, s, Green, Point{3, 9}, Point{3, 10}, Point{4, 10})

	groups := s.ResolveMatches(constants.MatchSize)
	assert.Empty(t, groups)
	assert.Equal(t, 3, s.Len())
}

func TestDiagonalDoesNotConnect(t *testing.T) {
	s := NewPieceSet()
	place(t, s, Yellow, Point{1, 10}, Point{2, 11}, Point{3, 10}, Point{4, 11})

	assert.Empty(t, s.ResolveMatches(constants.MatchSize))
	assert.Len(t, s.FindGroup(0), 1)
}

func TestFindGroupFollowsBends(t *testing.T) {
	s := NewPieceSet()
	// L shape plus a differently colored neighbour
	place(t, s, Purple, Point{2, 8}, Point{2, 9}, Point{2, 10}, Point{3, 10}, Point{4, 10})
	place(t, s, Red, Point{3, 9})

	group := s.FindGroup(4)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, group)

	assert.Equal(t, []int{5}, s.FindGroup(5))
	assert.Nil(t, s.FindGroup(99))
}

func TestSeparateGroupsClearedInOnePass(t *testing.T) {
	s := NewPieceSet()
	place(t, s, Red, Point{1, 8}, Point{1, 9}, Point{1, 10}, Point{1, 11})
	place(t, s, Blue, Point{2, 11}, Point{3, 11}, Point{4, 11}, Point{5, 11})
	place(t, s, Green, Point{2, 10})

	groups := s.ResolveMatches(constants.MatchSize)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, Green, s.At(0).Color)
	assert.Equal(t, 1, s.Grid().Count())
}

func TestMatchIdempotent(t *testing.T) {
	s := NewPieceSet()
	place(t, s, Red, Point{1, 1}, Point{1, 2}, Point{1, 3}, Point{1, 4})
	place(t, s, Red, Point{3, 5}, Point{3, 6})
	place(t, s, Blue, Point{4, 6})

	s.ResolveMatches(constants.MatchSize)
	first := s.Puyos()

	groups := s.ResolveMatches(constants.MatchSize)
	assert.Empty(t, groups)
	assert.Equal(t, first, s.Puyos())
}

func TestActivePuyosNeverMatch(t *testing.T) {
	g := newTestState(t)
	place(t, g.Pieces, Red, Point{4, 3}, Point{4, 4}, Point{4, 5})
	require.NoError(t, g.Spawn())
	setPairColor(t, g, Red)

	ci, ok := g.Child()
	require.True(t, ok)
	assert.Nil(t, g.Pieces.FindGroup(ci))

	assert.Empty(t, g.ResolveMatches())
	assert.Equal(t, 5, g.Pieces.Len())
	assert.Equal(t, 2, g.Pieces.ActiveCount())
}

func TestClearKeepsPairTrackable(t *testing.T) {
	g := newTestState(t)
	place(t, g.Pieces, Blue, Point{1, 8}, Point{1, 9}, Point{1, 10}, Point{1, 11})
	require.NoError(t, g.Spawn())

	groups := g.ResolveMatches()
	require.Len(t, groups, 1)

	ai, ok := g.Anchor()
	require.True(t, ok)
	ci, ok := g.Child()
	require.True(t, ok)
	assert.Equal(t, 0, ai)
	assert.Equal(t, 1, ci)
	assert.Equal(t, Point{4, 1}, g.Pieces.At(ai).Pos)
}

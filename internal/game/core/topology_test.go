package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientationOf(t *testing.T) {
	assert.Equal(t, PointingUp, OrientationOf(Coordinate{0, 0}))
	assert.Equal(t, PointingDown, OrientationOf(Coordinate{0, 1}))
	assert.Equal(t, PointingDown, OrientationOf(Coordinate{1, 0}))
	assert.Equal(t, PointingUp, OrientationOf(Coordinate{1, 1}))
	assert.Equal(t, PointingUp, OrientationOf(Coordinate{3, 5}))
}

func TestMovementNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coordinate
		expected []Coordinate
	}{
		{
			name:     "up cell in the middle has left, right and the cell below",
			coord:    Coordinate{2, 2},
			expected: []Coordinate{{2, 1}, {2, 3}, {3, 2}},
		},
		{
			name:     "down cell in the middle has left, right and the cell above",
			coord:    Coordinate{2, 3},
			expected: []Coordinate{{2, 2}, {2, 4}, {1, 3}},
		},
		{
			name:     "top left corner points up",
			coord:    Coordinate{0, 0},
			expected: []Coordinate{{0, 1}, {1, 0}},
		},
		{
			name:     "down cell on top row loses its base",
			coord:    Coordinate{0, 1},
			expected: []Coordinate{{0, 0}, {0, 2}},
		},
		{
			name:     "up cell on bottom row loses its base",
			coord:    Coordinate{3, 1},
			expected: []Coordinate{{3, 0}, {3, 2}},
		},
		{
			name:     "right edge",
			coord:    Coordinate{1, 4},
			expected: []Coordinate{{1, 3}, {0, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MovementNeighbors(tt.coord, 4, 5))
		})
	}
}

func TestMovementNeighbors_CountAndSymmetry(t *testing.T) {
	rows, cols := 6, 7
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coord := Coordinate{r, c}
			neighbors := MovementNeighbors(coord, rows, cols)
			assert.GreaterOrEqual(t, len(neighbors), 1)
			assert.LessOrEqual(t, len(neighbors), 3)
			for _, n := range neighbors {
				assert.True(t, IsMovementAdjacent(n, coord, rows, cols),
					"adjacency should be symmetric for %v and %v", coord, n)
			}
		}
	}
}

func TestIsMovementAdjacent(t *testing.T) {
	assert.True(t, IsMovementAdjacent(Coordinate{2, 2}, Coordinate{3, 2}, 5, 5))
	assert.False(t, IsMovementAdjacent(Coordinate{2, 2}, Coordinate{1, 2}, 5, 5), "up cell does not touch the cell above")
	assert.False(t, IsMovementAdjacent(Coordinate{2, 2}, Coordinate{3, 3}, 5, 5))
	assert.False(t, IsMovementAdjacent(Coordinate{2, 2}, Coordinate{2, 2}, 5, 5))
	assert.False(t, IsMovementAdjacent(Coordinate{0, 0}, Coordinate{-1, 0}, 5, 5))
}

func TestParseMirrorRelation(t *testing.T) {
	rel, err := ParseMirrorRelation("cardinal")
	require.NoError(t, err)
	assert.Equal(t, MirrorCardinal, rel)

	rel, err = ParseMirrorRelation("")
	require.NoError(t, err)
	assert.Equal(t, MirrorCardinal, rel)

	rel, err = ParseMirrorRelation("triangular")
	require.NoError(t, err)
	assert.Equal(t, MirrorTriangular, rel)

	_, err = ParseMirrorRelation("hexagonal")
	assert.Error(t, err)

	assert.Equal(t, "cardinal", MirrorCardinal.String())
	assert.Equal(t, "triangular", MirrorTriangular.String())
}

func TestMirrorPairs_Cardinal(t *testing.T) {
	pairs := MirrorPairs(Coordinate{1, 1}, 3, 3, MirrorCardinal)
	expected := []MirrorPair{
		{Source: Coordinate{1, 0}, Target: Coordinate{1, 2}},
		{Source: Coordinate{1, 2}, Target: Coordinate{1, 0}},
		{Source: Coordinate{0, 1}, Target: Coordinate{2, 1}},
		{Source: Coordinate{2, 1}, Target: Coordinate{0, 1}},
	}
	assert.Equal(t, expected, pairs)
}

func TestMirrorPairs_FiltersOutOfRange(t *testing.T) {
	// A corner pivot has no pair whose source and target are both on the board
	assert.Empty(t, MirrorPairs(Coordinate{0, 0}, 3, 3, MirrorCardinal))

	// An edge pivot keeps only the pair along the edge
	pairs := MirrorPairs(Coordinate{0, 1}, 3, 3, MirrorCardinal)
	assert.Equal(t, []MirrorPair{
		{Source: Coordinate{0, 0}, Target: Coordinate{0, 2}},
		{Source: Coordinate{0, 2}, Target: Coordinate{0, 0}},
	}, pairs)
}

func TestMirrorPairs_Triangular(t *testing.T) {
	// (2,2) points up, so its base offset is (+1,0)
	pairs := MirrorPairs(Coordinate{2, 2}, 5, 5, MirrorTriangular)
	assert.Equal(t, []MirrorPair{
		{Source: Coordinate{2, 1}, Target: Coordinate{2, 3}},
		{Source: Coordinate{2, 3}, Target: Coordinate{2, 1}},
		{Source: Coordinate{3, 2}, Target: Coordinate{1, 2}},
	}, pairs)

	// (2,3) points down, so its base offset is (-1,0)
	pairs = MirrorPairs(Coordinate{2, 3}, 5, 5, MirrorTriangular)
	require.Len(t, pairs, 3)
	assert.Equal(t, MirrorPair{Source: Coordinate{1, 3}, Target: Coordinate{3, 3}}, pairs[2])
}

package rules

import (
	"testing"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name     string
		player   core.Coordinate
		blocked  []core.Coordinate
		expected []core.Coordinate
	}{
		{
			name:     "up triangle in the interior",
			player:   core.NewCoordinate(2, 2),
			expected: []core.Coordinate{{Row: 2, Col: 1}, {Row: 2, Col: 3}, {Row: 3, Col: 2}},
		},
		{
			name:     "down triangle in the interior",
			player:   core.NewCoordinate(1, 2),
			expected: []core.Coordinate{{Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 0, Col: 2}},
		},
		{
			name:     "corner",
			player:   core.NewCoordinate(0, 0),
			expected: []core.Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
		},
		{
			name:     "blocked neighbors are filtered",
			player:   core.NewCoordinate(2, 2),
			blocked:  []core.Coordinate{{Row: 2, Col: 1}, {Row: 3, Col: 2}},
			expected: []core.Coordinate{{Row: 2, Col: 3}},
		},
	}

	lmc := NewLegalMoveCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := core.NewBoard(4, 5)
			for _, c := range tt.blocked {
				require.NoError(t, b.SetBlocked(c))
			}
			b.Player = tt.player

			assert.Equal(t, tt.expected, lmc.LegalMoves(b))
		})
	}
}

func TestGetLegalMoveMask(t *testing.T) {
	b := core.NewBoard(3, 3)
	b.Player = core.NewCoordinate(1, 1) // points up

	mask := NewLegalMoveCalculator().GetLegalMoveMask(b)

	require.Len(t, mask, 9)
	for i, legal := range mask {
		c := b.Coord(i)
		want := c == core.NewCoordinate(1, 0) || c == core.NewCoordinate(1, 2) || c == core.NewCoordinate(2, 1)
		assert.Equal(t, want, legal, "cell %v", c)
	}
}

func TestIsStuck(t *testing.T) {
	b := core.NewBoard(1, 3)
	b.Player = core.NewCoordinate(0, 1)
	lmc := NewLegalMoveCalculator()
	assert.False(t, lmc.IsStuck(b))

	require.NoError(t, b.SetBlocked(core.NewCoordinate(0, 0)))
	require.NoError(t, b.SetBlocked(core.NewCoordinate(0, 2)))
	assert.True(t, lmc.IsStuck(b))
}

package layout

import (
	"testing"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertices(t *testing.T) {
	l := New(40, 3, 4)

	assert.Equal(t, [3]Point{{0, 40}, {20, 0}, {40, 40}}, l.Vertices(core.NewCoordinate(0, 0)), "up")
	assert.Equal(t, [3]Point{{20, 0}, {40, 40}, {60, 0}}, l.Vertices(core.NewCoordinate(0, 1)), "down")
	assert.Equal(t, [3]Point{{0, 40}, {20, 80}, {40, 40}}, l.Vertices(core.NewCoordinate(1, 0)), "down in the next row")
}

func TestBoardSize(t *testing.T) {
	w, h := New(40, 3, 4).BoardSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 120, h)
}

func TestCellAt(t *testing.T) {
	l := New(40, 3, 4)

	tests := []struct {
		name  string
		x, y  float32
		want  core.Coordinate
		found bool
	}{
		{"inside first up triangle", 20, 30, core.NewCoordinate(0, 0), true},
		{"top of first down triangle", 40, 5, core.NewCoordinate(0, 1), true},
		{"bottom tip of down triangle", 40, 35, core.NewCoordinate(0, 1), true},
		{"beside the tip", 50, 35, core.NewCoordinate(0, 2), true},
		{"second row", 20, 45, core.NewCoordinate(1, 0), true},
		{"left notch is off the board", 5, 5, core.Coordinate{}, false},
		{"below the board", 20, 121, core.Coordinate{}, false},
		{"negative", -1, 10, core.Coordinate{}, false},
		{"past the right edge", 200, 10, core.Coordinate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.CellAt(tt.x, tt.y)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCellAt_CentersRoundTrip(t *testing.T) {
	l := New(36, 5, 7)
	l.OffsetX, l.OffsetY = 13, 21

	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			coord := core.NewCoordinate(r, c)
			center := l.Center(coord)
			got, ok := l.CellAt(center.X, center.Y)
			require.True(t, ok, "center of %v not on the board", coord)
			assert.Equal(t, coord, got)
		}
	}
}

func TestCellAt_ZeroSize(t *testing.T) {
	_, ok := Layout{Rows: 2, Cols: 2}.CellAt(1, 1)
	assert.False(t, ok)
}

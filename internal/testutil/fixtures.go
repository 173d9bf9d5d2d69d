package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/stretchr/testify/require"
)

// BoardFromRows builds a board from one string per row, one character per cell:
//
//	.  empty       M  base crystal    R  reflected crystal
//	X  blocked     S  exit            P  on path
//	@  player (on an empty cell)
//
// The player defaults to (0,0) when no '@' is present.
func BoardFromRows(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	require.NotEmpty(t, rows, "board needs at least one row")

	b := core.NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		require.Len(t, row, b.Cols, "row %d is ragged", r)
		for c, ch := range row {
			coord := core.NewCoordinate(r, c)
			cell := b.GetCell(coord)
			switch ch {
			case '.':
			case 'M':
				cell.Crystal = core.CrystalBase
			case 'R':
				cell.Crystal = core.CrystalReflected
			case 'X':
				require.NoError(t, b.SetBlocked(coord))
			case 'S':
				require.NoError(t, b.SetExit(coord))
			case 'P':
				cell.OnPath = true
			case '@':
				b.Player = coord
			default:
				t.Fatalf("unknown fixture cell %q at %s", ch, coord)
			}
		}
	}
	return b
}

// Coords is shorthand for a list of (row, col) pairs
func Coords(pairs ...[2]int) []core.Coordinate {
	out := make([]core.Coordinate, len(pairs))
	for i, p := range pairs {
		out[i] = core.NewCoordinate(p[0], p[1])
	}
	return out
}

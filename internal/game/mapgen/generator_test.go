package mapgen

import (
	"math/rand"
	"testing"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRNG provides a random number generator with a fixed seed for deterministic tests.
func newTestRNG() *rand.Rand {
	return testutil.NewTestRNG(12345)
}

func TestDefaultMapConfig(t *testing.T) {
	config := DefaultMapConfig(30, 20)

	assert.Equal(t, 30, config.Rows)
	assert.Equal(t, 20, config.Cols)
	assert.Equal(t, 5, config.Obstacles)
	assert.Equal(t, 2, config.AttemptFactor)
	assert.Equal(t, 1200, config.MaxAttempts())
}

func TestNewGenerator(t *testing.T) {
	config := DefaultMapConfig(10, 10)
	rng := newTestRNG()
	generator := NewGenerator(config, rng)

	require.NotNil(t, generator)
	assert.Equal(t, config, generator.Config())
	assert.Same(t, rng, generator.rng)
}

func TestGenerateBoard(t *testing.T) {
	t.Run("exit and player are placed apart", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			g := NewGenerator(DefaultMapConfig(6, 5), testutil.NewTestRNG(seed))
			board, err := g.GenerateBoard()
			require.NoError(t, err)

			exit, ok := board.Exit()
			require.True(t, ok)
			assert.NotEqual(t, exit, board.Player)
			assert.Equal(t, 1, board.Count(func(c *core.Cell) bool { return c.Exit }))
			assert.Zero(t, board.Count(func(c *core.Cell) bool { return c.Blocked || c.HasCrystal() }))
		}
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		a, err := NewGenerator(DefaultMapConfig(30, 20), newTestRNG()).GenerateBoard()
		require.NoError(t, err)
		b, err := NewGenerator(DefaultMapConfig(30, 20), newTestRNG()).GenerateBoard()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("single cell board", func(t *testing.T) {
		_, err := NewGenerator(DefaultMapConfig(1, 1), newTestRNG()).GenerateBoard()
		assert.ErrorIs(t, err, ErrNoCandidate)
	})
}

func TestRelocateExit(t *testing.T) {
	t.Run("avoids player, blocked cells and the old exit", func(t *testing.T) {
		g := NewGenerator(DefaultMapConfig(4, 4), newTestRNG())
		board := core.NewBoard(4, 4)
		require.NoError(t, board.SetExit(core.NewCoordinate(0, 0)))
		board.Player = core.NewCoordinate(3, 3)
		require.NoError(t, board.SetBlocked(core.NewCoordinate(1, 1)))

		for i := 0; i < 100; i++ {
			prev, _ := board.Exit()
			next, err := g.RelocateExit(board)
			require.NoError(t, err)

			assert.NotEqual(t, prev, next)
			assert.NotEqual(t, board.Player, next)
			assert.NotEqual(t, core.NewCoordinate(1, 1), next)
			assert.Equal(t, 1, board.Count(func(c *core.Cell) bool { return c.Exit }))
		}
	})

	t.Run("clears a crystal on the new exit", func(t *testing.T) {
		g := NewGenerator(DefaultMapConfig(1, 3), newTestRNG())
		board := core.NewBoard(1, 3)
		require.NoError(t, board.SetExit(core.NewCoordinate(0, 0)))
		board.Player = core.NewCoordinate(0, 1)
		board.GetCell(core.NewCoordinate(0, 2)).Crystal = core.CrystalBase

		next, err := g.RelocateExit(board)
		require.NoError(t, err)
		assert.Equal(t, core.NewCoordinate(0, 2), next, "only one cell qualifies")
		assert.Equal(t, core.CrystalNone, board.GetCell(next).Crystal)
		assert.False(t, board.GetCell(core.NewCoordinate(0, 0)).Exit)
	})

	t.Run("no candidate keeps the old exit", func(t *testing.T) {
		g := NewGenerator(DefaultMapConfig(1, 2), newTestRNG())
		board := core.NewBoard(1, 2)
		require.NoError(t, board.SetExit(core.NewCoordinate(0, 0)))
		board.Player = core.NewCoordinate(0, 1)

		exit, err := g.RelocateExit(board)
		assert.ErrorIs(t, err, ErrNoCandidate)
		assert.Equal(t, core.NewCoordinate(0, 0), exit)
		assert.True(t, board.GetCell(exit).Exit)
	})
}

func TestPlaceObstacles(t *testing.T) {
	t.Run("places distinct legal obstacles", func(t *testing.T) {
		g := NewGenerator(DefaultMapConfig(10, 10), newTestRNG())
		board := core.NewBoard(10, 10)
		require.NoError(t, board.SetExit(core.NewCoordinate(9, 9)))
		board.Player = core.NewCoordinate(0, 0)
		crystal := core.NewCoordinate(5, 5)
		board.GetCell(crystal).Crystal = core.CrystalBase

		placed := g.PlaceObstacles(board, 5)

		require.Len(t, placed, 5)
		seen := make(map[core.Coordinate]bool)
		for _, c := range placed {
			assert.False(t, seen[c], "duplicate obstacle at %v", c)
			seen[c] = true
			assert.True(t, board.GetCell(c).Blocked)
			assert.NotEqual(t, board.Player, c)
			assert.NotEqual(t, crystal, c)
		}
		assert.Equal(t, 5, board.Count(func(c *core.Cell) bool { return c.Blocked }))
		assert.True(t, board.GetCell(crystal).IsBase())
	})

	t.Run("accepts fewer when the board is full", func(t *testing.T) {
		g := NewGenerator(DefaultMapConfig(2, 2), newTestRNG())
		board := core.NewBoard(2, 2)
		require.NoError(t, board.SetExit(core.NewCoordinate(0, 0)))
		board.Player = core.NewCoordinate(0, 1)
		board.GetCell(core.NewCoordinate(1, 0)).Crystal = core.CrystalBase

		placed := g.PlaceObstacles(board, 5)

		assert.LessOrEqual(t, len(placed), 1, "only one cell qualifies")
		for _, c := range placed {
			assert.Equal(t, core.NewCoordinate(1, 1), c)
		}
	})

	t.Run("gives up after the attempt bound", func(t *testing.T) {
		config := DefaultMapConfig(3, 3)
		g := NewGenerator(config, newTestRNG())
		board := core.NewBoard(3, 3)
		for i := range board.Cells {
			board.Cells[i].Crystal = core.CrystalBase
		}

		placed := g.PlaceObstacles(board, 5)

		assert.Empty(t, placed)
		assert.Equal(t, config.MaxAttempts(), g.draws, "every attempt draws exactly one cell")
	})

	t.Run("stops drawing once enough are placed", func(t *testing.T) {
		config := DefaultMapConfig(10, 10)
		g := NewGenerator(config, newTestRNG())
		board := core.NewBoard(10, 10)

		placed := g.PlaceObstacles(board, 3)

		require.Len(t, placed, 3)
		assert.GreaterOrEqual(t, g.draws, 3)
		assert.LessOrEqual(t, g.draws, config.MaxAttempts())
	})

	t.Run("zero attempts places nothing", func(t *testing.T) {
		config := DefaultMapConfig(5, 5)
		config.AttemptFactor = 0
		board := core.NewBoard(5, 5)

		assert.Empty(t, NewGenerator(config, newTestRNG()).PlaceObstacles(board, 5))
	})
}

package mapgen

import (
	"errors"
	"math/rand"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

var ErrNoCandidate = errors.New("no cell satisfies the placement constraints")

// MapConfig holds configuration for board generation and rollover placement
type MapConfig struct {
	Rows          int
	Cols          int
	Obstacles     int // obstacles placed per rollover
	AttemptFactor int // placement attempts allowed per board cell
}

// DefaultMapConfig returns the standard rollover settings for a rows x cols board
func DefaultMapConfig(rows, cols int) MapConfig {
	return MapConfig{
		Rows:          rows,
		Cols:          cols,
		Obstacles:     5,
		AttemptFactor: 2,
	}
}

// MaxAttempts is the total number of random draws a single placement pass may use
func (c MapConfig) MaxAttempts() int {
	return c.AttemptFactor * c.Rows * c.Cols
}

// Generator handles board generation with a deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
	draws  int // random cells sampled so far
}

// NewGenerator creates a new board generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

func (g *Generator) Config() MapConfig { return g.config }

// GenerateBoard creates an empty board with the exit and the player placed
// at distinct random cells.
func (g *Generator) GenerateBoard() (*core.Board, error) {
	if g.config.Rows*g.config.Cols < 2 {
		return nil, ErrNoCandidate
	}
	board := core.NewBoard(g.config.Rows, g.config.Cols)

	exit := g.randomCell(board)
	if err := board.SetExit(exit); err != nil {
		return nil, err
	}

	player, err := g.pick(board, func(c core.Coordinate, cell *core.Cell) bool {
		return !cell.Exit && !cell.Blocked
	})
	if err != nil {
		return nil, err
	}
	board.Player = player

	return board, nil
}

// RelocateExit moves the exit to a uniformly random cell that is neither the
// player's cell, a blocked cell nor the current exit. Any crystal on the new
// exit is removed. When no such cell exists the board is left unchanged.
func (g *Generator) RelocateExit(b *core.Board) (core.Coordinate, error) {
	oldExit, hasExit := b.Exit()

	next, err := g.pick(b, func(c core.Coordinate, cell *core.Cell) bool {
		if cell.Blocked || c.Equal(b.Player) {
			return false
		}
		return !hasExit || !c.Equal(oldExit)
	})
	if err != nil {
		return oldExit, err
	}

	b.ClearExit()
	if err := b.SetExit(next); err != nil {
		return oldExit, err
	}
	return next, nil
}

// PlaceObstacles blocks up to n distinct random cells that are not the exit,
// not already blocked, not the player's cell and carry no crystal. It stops
// after MaxAttempts draws and returns the cells it actually blocked.
func (g *Generator) PlaceObstacles(b *core.Board, n int) []core.Coordinate {
	placed := make([]core.Coordinate, 0, n)
	maxAttempts := g.config.MaxAttempts()

	for attempts := 0; len(placed) < n && attempts < maxAttempts; attempts++ {
		c := g.randomCell(b)
		cell := b.GetCell(c)
		if cell.Exit || cell.Blocked || cell.HasCrystal() || c.Equal(b.Player) {
			continue
		}
		if err := b.SetBlocked(c); err != nil {
			continue
		}
		placed = append(placed, c)
	}

	return placed
}

func (g *Generator) randomCell(b *core.Board) core.Coordinate {
	g.draws++
	return core.NewCoordinate(g.rng.Intn(b.Rows), g.rng.Intn(b.Cols))
}

// pick resamples random cells until accept holds. After MaxAttempts draws it
// falls back to choosing uniformly among every accepted cell, so a crowded
// board still terminates with the same distribution.
func (g *Generator) pick(b *core.Board, accept func(core.Coordinate, *core.Cell) bool) (core.Coordinate, error) {
	maxAttempts := g.config.MaxAttempts()
	for attempts := 0; attempts < maxAttempts; attempts++ {
		c := g.randomCell(b)
		if accept(c, b.GetCell(c)) {
			return c, nil
		}
	}

	var candidates []core.Coordinate
	for i := range b.Cells {
		c := b.Coord(i)
		if accept(c, &b.Cells[i]) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return core.Coordinate{}, ErrNoCandidate
	}
	return candidates[g.rng.Intn(len(candidates))], nil
}

package game

import (
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/events"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/reflection"
	"github.com/rs/zerolog"
)

// rollover mutates the board once the turn counter reaches the threshold:
// the exit moves, new obstacles appear, reflections are demoted and the
// counter restarts. It returns the newly blocked cells.
func (tp *TurnProcessor) rollover(logger zerolog.Logger) []core.Coordinate {
	e := tp.engine
	oldExit, _ := e.board.Exit()

	newExit, err := e.generator.RelocateExit(e.board)
	if err != nil {
		logger.Warn().Err(err).Str("exit", oldExit.String()).Msg("No cell available for the exit, keeping it in place")
	}

	// Obstacles are placed before demotion so reflected cells are never blocked
	obstacles := e.generator.PlaceObstacles(e.board, e.obstacles)
	if len(obstacles) < e.obstacles {
		logger.Debug().
			Int("requested", e.obstacles).
			Int("placed", len(obstacles)).
			Msg("Obstacle placement ran out of attempts")
	}

	demoted := reflection.Demote(e.board)

	// The old path led to the old exit
	e.board.ClearPath()
	e.path = nil

	e.turnCounter = 0
	e.rollovers++

	logger.Info().
		Int("rollover", e.rollovers).
		Str("old_exit", oldExit.String()).
		Str("new_exit", newExit.String()).
		Int("obstacles", len(obstacles)).
		Int("demoted", demoted).
		Msg("Board rolled over")

	e.eventBus.Publish(events.NewRolloverEvent(e.gameID, e.rollovers, oldExit, newExit, obstacles, demoted, e.metadata()))
	return obstacles
}

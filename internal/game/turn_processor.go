package game

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/events"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/pathfind"
	"github.com/rs/zerolog"
)

var (
	ErrNoExporter     = errors.New("no exporter configured")
	ErrUnknownCommand = errors.New("unknown command")
)

// TurnProcessor runs a single command against the engine's board
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// Process validates cmd and dispatches it to its handler
func (tp *TurnProcessor) Process(cmd core.Command) (Outcome, error) {
	if cmd == nil {
		return Outcome{}, fmt.Errorf("%w: %w", core.ErrCommandRejected, ErrUnknownCommand)
	}

	if err := tp.validateGameState(); err != nil {
		return tp.reject(cmd, err)
	}
	if err := cmd.Validate(tp.engine.board); err != nil {
		return tp.reject(cmd, err)
	}

	cmdLogger := tp.logger.With().
		Str("command", core.GetCommandType(cmd)).
		Int("turn", tp.engine.turnCounter).
		Logger()
	cmdLogger.Debug().Msg("Processing command")

	switch cmd.Type() {
	case core.CommandToggleCrystal:
		if c, ok := cmd.(*core.ToggleCrystal); ok {
			return tp.toggleCrystal(c, cmdLogger), nil
		}
	case core.CommandMovePlayer:
		if c, ok := cmd.(*core.MovePlayer); ok {
			return tp.movePlayer(c, cmdLogger), nil
		}
	case core.CommandSolvePath:
		return tp.solvePath(cmdLogger), nil
	case core.CommandClearBoard:
		return tp.clearBoard(cmdLogger), nil
	case core.CommandExportBoard:
		return tp.exportBoard(cmdLogger)
	}

	return tp.reject(cmd, ErrUnknownCommand)
}

// validateGameState ensures the game can receive commands
func (tp *TurnProcessor) validateGameState() error {
	currentPhase := tp.engine.stateMachine.CurrentPhase()
	if !currentPhase.CanReceiveCommands() {
		tp.logger.Warn().
			Str("current_phase", currentPhase.String()).
			Msg("Attempted to apply a command in a phase that cannot receive commands")
		return fmt.Errorf("%w: phase %s", core.ErrNotPlaying, currentPhase)
	}
	return nil
}

// reject reports cmd as a no-op to the caller and to subscribers
func (tp *TurnProcessor) reject(cmd core.Command, reason error) (Outcome, error) {
	tp.logger.Debug().
		Err(reason).
		Str("command", core.GetCommandType(cmd)).
		Msg("Command rejected")

	tp.engine.eventBus.Publish(events.NewCommandRejectedEvent(
		tp.engine.gameID, cmd, reason, tp.engine.metadata(),
	))
	return Outcome{Command: cmd.Type()}, core.WrapCommandError(cmd, reason)
}

func (tp *TurnProcessor) toggleCrystal(cmd *core.ToggleCrystal, logger zerolog.Logger) Outcome {
	e := tp.engine
	cell := e.board.GetCell(cmd.Target)

	placed := !cell.IsBase()
	if placed {
		cell.Crystal = core.CrystalBase
	} else {
		cell.Crystal = core.CrystalNone
	}
	reflected := e.reflector.RecomputeAll(e.board)
	e.toggles++

	logger.Debug().
		Str("cell", cmd.Target.String()).
		Bool("placed", placed).
		Int("reflected", reflected).
		Msg("Crystal toggled")

	e.eventBus.Publish(events.NewCrystalToggledEvent(e.gameID, cmd.Target, placed, reflected, e.metadata()))
	return Outcome{Command: cmd.Type(), Changed: true}
}

func (tp *TurnProcessor) movePlayer(cmd *core.MovePlayer, logger zerolog.Logger) Outcome {
	e := tp.engine
	out := Outcome{Command: cmd.Type(), Changed: true}

	// Leave a Base crystal trail behind
	from := e.board.Player
	vacated := e.board.GetCell(from)
	trailPlaced := false
	if !vacated.Exit && !vacated.Blocked && !vacated.IsBase() {
		vacated.Crystal = core.CrystalBase
		trailPlaced = true
	}

	e.board.Player = cmd.Target
	if trailPlaced {
		e.reflector.RecomputeAll(e.board)
	}

	e.turnCounter++
	e.moves++
	e.eventBus.Publish(events.NewPlayerMovedEvent(e.gameID, from, cmd.Target, trailPlaced, e.metadata()))

	if e.turnCounter >= e.threshold {
		out.RolledOver = true
		out.NewObstacles = tp.rollover(logger)
	}

	if exit, ok := e.board.Exit(); ok && exit.Equal(e.board.Player) {
		out.ExitReached = true
		e.exitsReached++
		logger.Info().Str("cell", exit.String()).Msg("Exit reached")
		e.eventBus.Publish(events.NewExitReachedEvent(e.gameID, exit, e.metadata()))
	}

	return out
}

func (tp *TurnProcessor) solvePath(logger zerolog.Logger) Outcome {
	e := tp.engine
	out := Outcome{Command: core.CommandSolvePath, Changed: true}

	exit, ok := e.board.Exit()
	if !ok {
		e.board.ClearPath()
		e.path = nil
		logger.Warn().Msg("Board has no exit, nothing to solve")
		return out
	}

	if e.autoSeed && e.board.Count((*core.Cell).IsBase) == 0 {
		tp.seedCrystal(logger)
	}

	e.path = pathfind.Solve(e.board, exit, e.board.Player)
	out.Path = e.Path()

	logger.Debug().
		Bool("found", len(e.path) > 0).
		Int("length", len(e.path)).
		Msg("Path solved")

	e.eventBus.Publish(events.NewPathSolvedEvent(e.gameID, e.path, exit, e.metadata()))
	return out
}

// seedCrystal places a Base crystal on the first free cell so a solve has
// somewhere to start from
func (tp *TurnProcessor) seedCrystal(logger zerolog.Logger) {
	e := tp.engine
	for i := range e.board.Cells {
		if e.board.Cells[i].IsFree() {
			e.board.Cells[i].Crystal = core.CrystalBase
			e.reflector.RecomputeAll(e.board)
			logger.Debug().Str("cell", e.board.Coord(i).String()).Msg("Seeded start crystal")
			return
		}
	}
}

func (tp *TurnProcessor) clearBoard(logger zerolog.Logger) Outcome {
	e := tp.engine

	cleared := 0
	for i := range e.board.Cells {
		cell := &e.board.Cells[i]
		if cell.Exit || cell.Blocked {
			continue
		}
		if cell.HasCrystal() {
			cleared++
		}
		cell.Crystal = core.CrystalNone
	}
	e.board.ClearPath()
	e.path = nil
	e.turnCounter = 0

	logger.Debug().Int("cleared", cleared).Msg("Board cleared")
	e.eventBus.Publish(events.NewBoardClearedEvent(e.gameID, cleared))
	return Outcome{Command: core.CommandClearBoard, Changed: true}
}

func (tp *TurnProcessor) exportBoard(logger zerolog.Logger) (Outcome, error) {
	e := tp.engine
	out := Outcome{Command: core.CommandExportBoard}

	destination := ""
	err := ErrNoExporter
	if e.exporter != nil {
		destination = e.exporter.Destination()
		err = e.exporter.Export(e.board)
	}

	if err != nil {
		logger.Error().Err(err).Str("destination", destination).Msg("Board export failed")
		e.eventBus.Publish(events.NewExportFailedEvent(e.gameID, destination, err))
		return out, fmt.Errorf("exporting board: %w", err)
	}

	logger.Info().Str("destination", destination).Msg("Board exported")
	e.eventBus.Publish(events.NewBoardExportedEvent(e.gameID, destination))
	return out, nil
}

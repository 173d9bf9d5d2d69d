package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/events"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/mapgen"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/reflection"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/rules"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/states"
	"github.com/rs/zerolog"
)

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before it started")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	board, levelID, err := ei.buildBoard()
	if err != nil {
		return nil, fmt.Errorf("board setup failed: %w", err)
	}

	engine := ei.createEngine(board, levelID)

	// Level files may start with crystals that already reflect
	reflected := engine.reflector.RecomputeAll(board)
	ei.logger.Debug().Int("reflected", reflected).Msg("Initial reflections computed")

	if err := ei.initializeStateMachine(engine); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	exit, _ := board.Exit()
	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		board.Rows,
		board.Cols,
		exit,
		board.Player,
		engine.reflector.Relation().String(),
		levelID,
	))

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("rows", board.Rows).
		Int("cols", board.Cols).
		Int("threshold", engine.threshold).
		Str("relation", engine.reflector.Relation().String()).
		Str("level", levelID).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.GameID == "" {
		ei.config.GameID = uuid.New().String()
	}

	if ei.config.Rows <= 0 || ei.config.Cols <= 0 {
		ei.config.Rows, ei.config.Cols = DefaultRows, DefaultCols
	}
	if ei.config.Threshold <= 0 {
		ei.config.Threshold = DefaultThreshold
	}
	switch {
	case ei.config.Obstacles == 0:
		ei.config.Obstacles = DefaultObstacles
	case ei.config.Obstacles < 0:
		ei.config.Obstacles = 0
	}
	if ei.config.AttemptFactor <= 0 {
		ei.config.AttemptFactor = DefaultAttemptFactor
	}

	if ei.config.Level != nil {
		ei.config.Rows = ei.config.Level.Size.Rows
		ei.config.Cols = ei.config.Level.Size.Cols
	}
}

func (ei *EngineInitializer) mapConfig() mapgen.MapConfig {
	mapCfg := mapgen.DefaultMapConfig(ei.config.Rows, ei.config.Cols)
	mapCfg.Obstacles = ei.config.Obstacles
	mapCfg.AttemptFactor = ei.config.AttemptFactor
	return mapCfg
}

// buildBoard loads the configured level or generates a random board
func (ei *EngineInitializer) buildBoard() (*core.Board, string, error) {
	if lvl := ei.config.Level; lvl != nil {
		board, err := lvl.Build()
		if err != nil {
			return nil, "", err
		}
		ei.logger.Info().Str("level", lvl.ID).Str("file", lvl.FilePath).Msg("Loaded level")
		return board, lvl.ID, nil
	}

	generator := mapgen.NewGenerator(ei.mapConfig(), ei.config.Rng)
	board, err := generator.GenerateBoard()
	if err != nil {
		return nil, "", err
	}
	return board, "", nil
}

// createEngine wires the engine and its components around board
func (ei *EngineInitializer) createEngine(board *core.Board, levelID string) *Engine {
	eventBus := events.NewEventBus(ei.logger)

	eventLogger := subscribers.NewLoggerSubscriber("engine-event-logger", ei.logger, zerolog.DebugLevel)
	eventBus.Subscribe(eventLogger)

	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	stateMachine := states.NewStateMachine(gameContext, eventBus)

	engine := &Engine{
		board:        board,
		logger:       ei.logger.With().Str("game_id", ei.config.GameID).Logger(),
		reflector:    reflection.NewEngine(ei.config.Relation),
		generator:    mapgen.NewGenerator(ei.mapConfig(), ei.config.Rng),
		exporter:     ei.config.Exporter,
		legal:        rules.NewLegalMoveCalculator(),
		eventBus:     eventBus,
		gameID:       ei.config.GameID,
		levelID:      levelID,
		stateMachine: stateMachine,
		threshold:    ei.config.Threshold,
		obstacles:    ei.config.Obstacles,
		autoSeed:     ei.config.AutoSeed,
	}
	engine.turnProcessor = NewTurnProcessor(engine)

	return engine
}

// initializeStateMachine moves the game into PhasePlaying
func (ei *EngineInitializer) initializeStateMachine(engine *Engine) error {
	stateMachine := engine.stateMachine
	gameContext := stateMachine.GetContext()

	_, hasExit := engine.board.Exit()
	gameContext.BoardReady = hasExit && engine.board.InBounds(engine.board.Player)

	if err := stateMachine.TransitionTo(states.PhasePlaying, "Board ready"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Playing state")
		if failErr := stateMachine.Fail(err); failErr != nil {
			ei.logger.Error().Err(failErr).Msg("Failed to record error state")
		}
		return err
	}

	return nil
}

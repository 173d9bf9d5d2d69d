package game

import (
	"context"
	"math/rand"

	"github.com/mitchelldurbincs/CrystalCaves/internal/export"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/events"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/level"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/mapgen"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/reflection"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/rules"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig holds the settings for a single game
type GameConfig struct {
	Rows          int
	Cols          int
	Threshold     int // accepted moves between rollovers
	Obstacles     int // obstacles placed per rollover; 0 means DefaultObstacles, negative means none
	AttemptFactor int
	Relation      core.MirrorRelation
	AutoSeed      bool
	Rng           *rand.Rand
	GameID        string
	Logger        zerolog.Logger
	Level         *level.Level    // optional fixed starting layout
	Exporter      export.Exporter // optional, export-board fails without one
}

// Outcome describes what an accepted command did to the board
type Outcome struct {
	Command      core.CommandType
	Changed      bool
	ExitReached  bool
	RolledOver   bool
	Path         []core.Coordinate
	NewObstacles []core.Coordinate
}

// Engine is the turn controller. It owns the board and applies commands to
// it one at a time; it is not safe for concurrent use.
type Engine struct {
	board     *core.Board
	logger    zerolog.Logger
	reflector *reflection.Engine
	generator *mapgen.Generator
	exporter  export.Exporter
	legal     *rules.LegalMoveCalculator

	eventBus      *events.EventBus
	gameID        string
	levelID       string
	stateMachine  *states.StateMachine
	turnProcessor *TurnProcessor

	threshold int
	obstacles int
	autoSeed  bool

	turnCounter  int
	moves        int
	toggles      int
	rollovers    int
	exitsReached int
	path         []core.Coordinate
}

// NewEngine creates a new game engine with an initial board
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Apply validates and executes one command. Rejected commands leave the
// board untouched and return a *core.CommandError.
func (e *Engine) Apply(cmd core.Command) (Outcome, error) {
	return e.turnProcessor.Process(cmd)
}

// Board returns the live board. Callers must treat it as read-only.
func (e *Engine) Board() *core.Board { return e.board }

func (e *Engine) GameID() string                { return e.gameID }
func (e *Engine) EventBus() *events.EventBus    { return e.eventBus }
func (e *Engine) Phase() states.GamePhase       { return e.stateMachine.CurrentPhase() }
func (e *Engine) Relation() core.MirrorRelation { return e.reflector.Relation() }
func (e *Engine) TurnCounter() int              { return e.turnCounter }
func (e *Engine) Threshold() int                { return e.threshold }
func (e *Engine) Player() core.Coordinate       { return e.board.Player }
func (e *Engine) Exit() (core.Coordinate, bool) { return e.board.Exit() }

// StateMachine exposes the phase machine, mainly for diagnostics
func (e *Engine) StateMachine() *states.StateMachine { return e.stateMachine }

// Path returns a copy of the most recently solved path, nil if there is none
func (e *Engine) Path() []core.Coordinate {
	if len(e.path) == 0 {
		return nil
	}
	out := make([]core.Coordinate, len(e.path))
	copy(out, e.path)
	return out
}

// LegalMoves returns the cells the player can currently step onto
func (e *Engine) LegalMoves() []core.Coordinate {
	return e.legal.LegalMoves(e.board)
}

// LegalMoveMask marks legal move targets, one entry per cell in row-major order
func (e *Engine) LegalMoveMask() []bool {
	return e.legal.GetLegalMoveMask(e.board)
}

// IsStuck reports whether every neighbor of the player is blocked
func (e *Engine) IsStuck() bool {
	return e.legal.IsStuck(e.board)
}

func (e *Engine) metadata() events.EventMetadata {
	return events.EventMetadata{Turn: e.turnCounter, Moves: e.moves}
}

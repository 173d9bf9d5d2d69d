package events

import (
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeCrystalToggled  = "crystal.toggled"
	TypePlayerMoved     = "player.moved"
	TypeBoardRollover   = "board.rollover"
	TypeExitReached     = "exit.reached"
	TypePathSolved      = "path.solved"
	TypeBoardCleared    = "board.cleared"
	TypeBoardExported   = "board.exported"
	TypeExportFailed    = "export.failed"
	TypeCommandRejected = "command.rejected"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published once the board is ready for commands
type GameStartedEvent struct {
	BaseEvent
	Rows     int
	Cols     int
	Exit     core.Coordinate
	Player   core.Coordinate
	Relation string
	Level    string
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, rows, cols int, exit, player core.Coordinate, relation, level string) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Rows:      rows,
		Cols:      cols,
		Exit:      exit,
		Player:    player,
		Relation:  relation,
		Level:     level,
	}
}

// CrystalToggledEvent is published when a Base crystal is placed or removed
type CrystalToggledEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Cell      core.Coordinate
	Placed    bool
	Reflected int // Reflected crystals on the board after recomputing
}

// NewCrystalToggledEvent creates a new CrystalToggledEvent
func NewCrystalToggledEvent(gameID string, cell core.Coordinate, placed bool, reflected int, meta EventMetadata) *CrystalToggledEvent {
	return &CrystalToggledEvent{
		BaseEvent: newBase(TypeCrystalToggled, gameID),
		Metadata:  meta,
		Cell:      cell,
		Placed:    placed,
		Reflected: reflected,
	}
}

// PlayerMovedEvent is published after every accepted move
type PlayerMovedEvent struct {
	BaseEvent
	Metadata    EventMetadata
	From        core.Coordinate
	To          core.Coordinate
	TrailPlaced bool
}

// NewPlayerMovedEvent creates a new PlayerMovedEvent
func NewPlayerMovedEvent(gameID string, from, to core.Coordinate, trailPlaced bool, meta EventMetadata) *PlayerMovedEvent {
	return &PlayerMovedEvent{
		BaseEvent:   newBase(TypePlayerMoved, gameID),
		Metadata:    meta,
		From:        from,
		To:          to,
		TrailPlaced: trailPlaced,
	}
}

// RolloverEvent is published when the turn threshold mutates the board
type RolloverEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Rollover  int
	OldExit   core.Coordinate
	NewExit   core.Coordinate
	Obstacles []core.Coordinate
	Demoted   int
}

// NewRolloverEvent creates a new RolloverEvent
func NewRolloverEvent(gameID string, rollover int, oldExit, newExit core.Coordinate, obstacles []core.Coordinate, demoted int, meta EventMetadata) *RolloverEvent {
	return &RolloverEvent{
		BaseEvent: newBase(TypeBoardRollover, gameID),
		Metadata:  meta,
		Rollover:  rollover,
		OldExit:   oldExit,
		NewExit:   newExit,
		Obstacles: obstacles,
		Demoted:   demoted,
	}
}

// ExitReachedEvent is informational; the game keeps accepting commands
type ExitReachedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Cell     core.Coordinate
}

// NewExitReachedEvent creates a new ExitReachedEvent
func NewExitReachedEvent(gameID string, cell core.Coordinate, meta EventMetadata) *ExitReachedEvent {
	return &ExitReachedEvent{
		BaseEvent: newBase(TypeExitReached, gameID),
		Metadata:  meta,
		Cell:      cell,
	}
}

// PathSolvedEvent is published after every solve, found or not
type PathSolvedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Found    bool
	Length   int
	Start    core.Coordinate
	Exit     core.Coordinate
}

// NewPathSolvedEvent creates a new PathSolvedEvent
func NewPathSolvedEvent(gameID string, path []core.Coordinate, exit core.Coordinate, meta EventMetadata) *PathSolvedEvent {
	e := &PathSolvedEvent{
		BaseEvent: newBase(TypePathSolved, gameID),
		Metadata:  meta,
		Found:     len(path) > 0,
		Length:    len(path),
		Exit:      exit,
	}
	if e.Found {
		e.Start = path[0]
	}
	return e
}

// BoardClearedEvent is published when every crystal is removed
type BoardClearedEvent struct {
	BaseEvent
	Cleared int
}

// NewBoardClearedEvent creates a new BoardClearedEvent
func NewBoardClearedEvent(gameID string, cleared int) *BoardClearedEvent {
	return &BoardClearedEvent{
		BaseEvent: newBase(TypeBoardCleared, gameID),
		Cleared:   cleared,
	}
}

// BoardExportedEvent is published after a snapshot is written
type BoardExportedEvent struct {
	BaseEvent
	Destination string
}

// NewBoardExportedEvent creates a new BoardExportedEvent
func NewBoardExportedEvent(gameID, destination string) *BoardExportedEvent {
	return &BoardExportedEvent{
		BaseEvent:   newBase(TypeBoardExported, gameID),
		Destination: destination,
	}
}

// ExportFailedEvent is published when a snapshot cannot be written
type ExportFailedEvent struct {
	BaseEvent
	Destination string
	Err         error
}

// NewExportFailedEvent creates a new ExportFailedEvent
func NewExportFailedEvent(gameID, destination string, err error) *ExportFailedEvent {
	return &ExportFailedEvent{
		BaseEvent:   newBase(TypeExportFailed, gameID),
		Destination: destination,
		Err:         err,
	}
}

// CommandRejectedEvent is published when a command fails validation
type CommandRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Command  string
	Reason   string
}

// NewCommandRejectedEvent creates a new CommandRejectedEvent
func NewCommandRejectedEvent(gameID string, cmd core.Command, reason error, meta EventMetadata) *CommandRejectedEvent {
	return &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, gameID),
		Metadata:  meta,
		Command:   core.GetCommandType(cmd),
		Reason:    reason.Error(),
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}

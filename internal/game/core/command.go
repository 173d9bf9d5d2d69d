package core

import "fmt"

// CommandType represents the type of command
type CommandType int

const (
	CommandToggleCrystal CommandType = iota
	CommandMovePlayer
	CommandSolvePath
	CommandClearBoard
	CommandExportBoard
)

func (t CommandType) String() string {
	switch t {
	case CommandToggleCrystal:
		return "toggle-crystal"
	case CommandMovePlayer:
		return "move-player"
	case CommandSolvePath:
		return "solve-path"
	case CommandClearBoard:
		return "clear-board"
	case CommandExportBoard:
		return "export-board"
	default:
		return fmt.Sprintf("CommandType(%d)", int(t))
	}
}

// Command represents a player command
type Command interface {
	Type() CommandType
	Validate(b *Board) error
}

// ToggleCrystal flips a Base crystal on or off at Target
type ToggleCrystal struct {
	Target Coordinate
}

func (t *ToggleCrystal) Type() CommandType { return CommandToggleCrystal }
func (t *ToggleCrystal) String() string    { return fmt.Sprintf("%s%s", t.Type(), t.Target) }

func (t *ToggleCrystal) Validate(b *Board) error {
	cell := b.GetCell(t.Target)
	if cell == nil {
		return ErrInvalidCoordinates
	}
	if cell.Exit {
		return ErrCellIsExit
	}
	if cell.Blocked {
		return ErrCellBlocked
	}
	// Reflected crystals are owned by propagation
	if cell.IsReflected() {
		return ErrCellReflected
	}
	return nil
}

// MovePlayer steps the player onto an adjacent cell
type MovePlayer struct {
	Target Coordinate
}

func (m *MovePlayer) Type() CommandType { return CommandMovePlayer }
func (m *MovePlayer) String() string    { return fmt.Sprintf("%s%s", m.Type(), m.Target) }

func (m *MovePlayer) Validate(b *Board) error {
	cell := b.GetCell(m.Target)
	if cell == nil {
		return ErrInvalidCoordinates
	}
	if m.Target.Equal(b.Player) {
		return ErrMoveToSelf
	}
	if !IsMovementAdjacent(b.Player, m.Target, b.Rows, b.Cols) {
		return ErrNotAdjacent
	}
	if cell.Blocked {
		return ErrCellBlocked
	}
	return nil
}

// SolvePath searches for a crystal path from the player to the exit
type SolvePath struct{}

func (SolvePath) Type() CommandType     { return CommandSolvePath }
func (SolvePath) Validate(*Board) error { return nil }
func (SolvePath) String() string        { return CommandSolvePath.String() }

// ClearBoard removes every crystal and path mark
type ClearBoard struct{}

func (ClearBoard) Type() CommandType     { return CommandClearBoard }
func (ClearBoard) Validate(*Board) error { return nil }
func (ClearBoard) String() string        { return CommandClearBoard.String() }

// ExportBoard writes the board snapshot
type ExportBoard struct{}

func (ExportBoard) Type() CommandType     { return CommandExportBoard }
func (ExportBoard) Validate(*Board) error { return nil }
func (ExportBoard) String() string        { return CommandExportBoard.String() }

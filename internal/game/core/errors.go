package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrNotAdjacent        = errors.New("cells are not adjacent")
	ErrCellBlocked        = errors.New("cell is blocked")
	ErrCellIsExit         = errors.New("cell is the exit")
	ErrCellReflected      = errors.New("cell holds a reflected crystal")
	ErrMoveToSelf         = errors.New("cannot move to the current cell")
	ErrNotPlaying         = errors.New("game is not accepting commands")
	ErrCommandRejected    = errors.New("command rejected")
)

// CommandError carries the command that was rejected and why.
// It matches ErrCommandRejected as well as its cause under errors.Is.
type CommandError struct {
	Command Command
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrCommandRejected, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandRejected
}

// WrapCommandError wraps err with the command context. A nil err stays nil.
func WrapCommandError(cmd Command, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Command: cmd, Err: err}
}

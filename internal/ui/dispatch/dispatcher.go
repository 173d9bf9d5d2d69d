// Package dispatch turns one frame of raw input into game commands.
package dispatch

import (
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/ui/layout"
)

// Key is a logical key binding, independent of the windowing library
type Key int

const (
	KeySolve Key = iota
	KeyClear
	KeyExport
)

func (k Key) String() string {
	switch k {
	case KeySolve:
		return "solve"
	case KeyClear:
		return "clear"
	case KeyExport:
		return "export"
	default:
		return "unknown"
	}
}

// Frame is the input observed during one update tick
type Frame struct {
	CursorX, CursorY int
	LeftClick        bool
	RightClick       bool
	Keys             []Key // keys pressed this frame, in binding order
}

// Dispatcher maps frames to commands using the board layout for hit testing
type Dispatcher struct {
	layout layout.Layout
}

func New(l layout.Layout) *Dispatcher {
	return &Dispatcher{layout: l}
}

// Hovered returns the cell under the cursor
func (d *Dispatcher) Hovered(f Frame) (core.Coordinate, bool) {
	return d.layout.CellAt(float32(f.CursorX), float32(f.CursorY))
}

// Commands returns the commands a frame asks for, clicks first.
//
// A left click on a cell the player can step to moves the player; a left
// click anywhere else, or any right click, toggles a crystal there. Commands
// are not validated here; the engine rejects the ones that do not apply.
func (d *Dispatcher) Commands(f Frame, board *core.Board) []core.Command {
	var cmds []core.Command

	if f.LeftClick || f.RightClick {
		if target, ok := d.Hovered(f); ok {
			if f.LeftClick && core.IsMovementAdjacent(board.Player, target, board.Rows, board.Cols) {
				cmds = append(cmds, &core.MovePlayer{Target: target})
			} else {
				cmds = append(cmds, &core.ToggleCrystal{Target: target})
			}
		}
	}

	for _, k := range f.Keys {
		switch k {
		case KeySolve:
			cmds = append(cmds, core.SolvePath{})
		case KeyClear:
			cmds = append(cmds, core.ClearBoard{})
		case KeyExport:
			cmds = append(cmds, core.ExportBoard{})
		}
	}

	return cmds
}

package game

import "github.com/mitchelldurbincs/CrystalCaves/internal/game/core"

// Stats summarises the game for the side panel and the CLI
type Stats struct {
	TurnCounter       int
	Threshold         int
	Moves             int
	Toggles           int
	Rollovers         int
	ExitsReached      int
	BaseCrystals      int
	ReflectedCrystals int
	BlockedCells      int
	PathLength        int
}

// TurnsUntilRollover returns how many accepted moves remain before the board mutates
func (s Stats) TurnsUntilRollover() int {
	return s.Threshold - s.TurnCounter
}

// Stats scans the board and returns the current statistics
func (e *Engine) Stats() Stats {
	s := Stats{
		TurnCounter:  e.turnCounter,
		Threshold:    e.threshold,
		Moves:        e.moves,
		Toggles:      e.toggles,
		Rollovers:    e.rollovers,
		ExitsReached: e.exitsReached,
	}

	for i := range e.board.Cells {
		cell := &e.board.Cells[i]
		switch {
		case cell.Blocked:
			s.BlockedCells++
		case cell.Crystal == core.CrystalBase:
			s.BaseCrystals++
		case cell.Crystal == core.CrystalReflected:
			s.ReflectedCrystals++
		}
		if cell.OnPath {
			s.PathLength++
		}
	}

	return s
}

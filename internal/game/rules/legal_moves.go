package rules

import "github.com/mitchelldurbincs/CrystalCaves/internal/game/core"

// LegalMoveCalculator computes the moves the player may make
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// LegalMoves returns every cell a move-player command would accept from the
// player's current position, in movement neighbor order (left, right, base).
func (lmc *LegalMoveCalculator) LegalMoves(board *core.Board) []core.Coordinate {
	neighbors := core.MovementNeighbors(board.Player, board.Rows, board.Cols)
	moves := make([]core.Coordinate, 0, len(neighbors))

	for _, n := range neighbors {
		// Use the existing validation logic
		move := &core.MovePlayer{Target: n}
		if err := move.Validate(board); err == nil {
			moves = append(moves, n)
		}
	}

	return moves
}

// GetLegalMoveMask returns a flattened boolean mask with one entry per cell in
// row-major order; true marks a legal move target.
func (lmc *LegalMoveCalculator) GetLegalMoveMask(board *core.Board) []bool {
	mask := make([]bool, board.Size())
	for _, c := range lmc.LegalMoves(board) {
		mask[board.Idx(c)] = true
	}
	return mask
}

// IsStuck reports whether the player has no legal move at all
func (lmc *LegalMoveCalculator) IsStuck(board *core.Board) bool {
	return len(lmc.LegalMoves(board)) == 0
}

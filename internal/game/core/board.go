package core

// CrystalKind tags what kind of crystal, if any, occupies a cell.
type CrystalKind int

const (
	CrystalNone CrystalKind = iota
	CrystalBase
	CrystalReflected
)

func (k CrystalKind) String() string {
	switch k {
	case CrystalBase:
		return "base"
	case CrystalReflected:
		return "reflected"
	default:
		return "none"
	}
}

// Cell represents a single triangle on the board.
// Crystal: None, Base (player placed) or Reflected (derived by propagation).
// Blocked and Exit are mutually exclusive; OnPath is recomputed by every solve.
type Cell struct {
	Crystal CrystalKind
	Blocked bool
	Exit    bool
	OnPath  bool
}

func (c *Cell) HasCrystal() bool  { return c.Crystal != CrystalNone }
func (c *Cell) IsBase() bool      { return c.Crystal == CrystalBase }
func (c *Cell) IsReflected() bool { return c.Crystal == CrystalReflected }

// IsTraversable reports whether path search may step onto this cell.
func (c *Cell) IsTraversable() bool {
	return !c.Blocked && (c.HasCrystal() || c.Exit)
}

// IsFree reports whether the cell is empty ground: no crystal, not blocked, not the exit.
func (c *Cell) IsFree() bool {
	return !c.Blocked && !c.Exit && c.Crystal == CrystalNone
}

const noExit = -1

// Board owns every cell and the player position for the lifetime of a game.
type Board struct {
	Rows, Cols int
	Cells      []Cell // length = Rows*Cols (row-major)
	Player     Coordinate

	exitIdx int
}

func NewBoard(rows, cols int) *Board {
	return &Board{
		Rows:    rows,
		Cols:    cols,
		Cells:   make([]Cell, rows*cols),
		exitIdx: noExit,
	}
}

func (b *Board) Idx(c Coordinate) int     { return c.ToIndex(b.Cols) }
func (b *Board) Coord(idx int) Coordinate { return FromIndex(idx, b.Cols) }
func (b *Board) Size() int                { return len(b.Cells) }

// InBounds checks if the coordinate is within board boundaries
func (b *Board) InBounds(c Coordinate) bool {
	return c.IsValid(b.Rows, b.Cols)
}

// GetCell safely returns a cell pointer if the coordinate is valid, nil otherwise
func (b *Board) GetCell(c Coordinate) *Cell {
	if !b.InBounds(c) {
		return nil
	}
	return &b.Cells[b.Idx(c)]
}

// Exit returns the exit coordinate, or false if none has been placed yet.
func (b *Board) Exit() (Coordinate, bool) {
	if b.exitIdx == noExit {
		return Coordinate{}, false
	}
	return b.Coord(b.exitIdx), true
}

// SetExit moves the single exit to c, clearing any crystal on it.
func (b *Board) SetExit(c Coordinate) error {
	cell := b.GetCell(c)
	if cell == nil {
		return ErrInvalidCoordinates
	}
	if cell.Blocked {
		return ErrCellBlocked
	}
	if b.exitIdx != noExit {
		b.Cells[b.exitIdx].Exit = false
	}
	cell.Exit = true
	cell.Crystal = CrystalNone
	b.exitIdx = b.Idx(c)
	return nil
}

// ClearExit removes the exit flag from the current exit cell.
func (b *Board) ClearExit() {
	if b.exitIdx != noExit {
		b.Cells[b.exitIdx].Exit = false
		b.exitIdx = noExit
	}
}

// SetBlocked turns c into an obstacle. The exit can never be blocked.
func (b *Board) SetBlocked(c Coordinate) error {
	cell := b.GetCell(c)
	if cell == nil {
		return ErrInvalidCoordinates
	}
	if cell.Exit {
		return ErrCellIsExit
	}
	cell.Blocked = true
	cell.Crystal = CrystalNone
	cell.OnPath = false
	return nil
}

// ClearPath resets every OnPath overlay flag.
func (b *Board) ClearPath() {
	for i := range b.Cells {
		b.Cells[i].OnPath = false
	}
}

// Count returns the number of cells matching pred.
func (b *Board) Count(pred func(*Cell) bool) int {
	n := 0
	for i := range b.Cells {
		if pred(&b.Cells[i]) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	cp.Cells = make([]Cell, len(b.Cells))
	copy(cp.Cells, b.Cells)
	return &cp
}

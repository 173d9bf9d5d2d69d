package core

import "fmt"

// Orientation is the direction a triangular cell points in.
type Orientation int

const (
	PointingUp Orientation = iota
	PointingDown
)

func (o Orientation) String() string {
	switch o {
	case PointingUp:
		return "up"
	case PointingDown:
		return "down"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// OrientationOf returns the orientation of the cell at c.
// Cells whose row+col is even point up, the rest point down.
func OrientationOf(c Coordinate) Orientation {
	if (c.Row+c.Col)%2 == 0 {
		return PointingUp
	}
	return PointingDown
}

// BaseOffset returns the offset to the cell sharing this cell's horizontal edge.
func BaseOffset(c Coordinate) Coordinate {
	if OrientationOf(c) == PointingUp {
		return Coordinate{Row: 1, Col: 0}
	}
	return Coordinate{Row: -1, Col: 0}
}

var (
	leftOffset  = Coordinate{Row: 0, Col: -1}
	rightOffset = Coordinate{Row: 0, Col: 1}
)

// MovementNeighbors returns the in-bounds neighbors of c under the triangular
// adjacency graph, always enumerated as left, right, base.
func MovementNeighbors(c Coordinate, rows, cols int) []Coordinate {
	candidates := [3]Coordinate{
		c.Add(leftOffset),
		c.Add(rightOffset),
		c.Add(BaseOffset(c)),
	}

	neighbors := make([]Coordinate, 0, 3)
	for _, n := range candidates {
		if n.IsValid(rows, cols) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// IsMovementAdjacent reports whether b is a movement neighbor of a.
// The relation is symmetric.
func IsMovementAdjacent(a, b Coordinate, rows, cols int) bool {
	if !a.IsValid(rows, cols) || !b.IsValid(rows, cols) {
		return false
	}
	for _, n := range MovementNeighbors(a, rows, cols) {
		if n.Equal(b) {
			return true
		}
	}
	return false
}

// MirrorRelation selects which offsets reflection propagation mirrors across.
type MirrorRelation int

const (
	// MirrorCardinal mirrors across the four cardinal offsets regardless of
	// cell orientation.
	MirrorCardinal MirrorRelation = iota
	// MirrorTriangular mirrors across the movement offsets of the pivot
	// (left, right and its base neighbor).
	MirrorTriangular
)

func (m MirrorRelation) String() string {
	switch m {
	case MirrorCardinal:
		return "cardinal"
	case MirrorTriangular:
		return "triangular"
	default:
		return fmt.Sprintf("MirrorRelation(%d)", int(m))
	}
}

// ParseMirrorRelation converts a config string to a MirrorRelation
func ParseMirrorRelation(s string) (MirrorRelation, error) {
	switch s {
	case "", "cardinal":
		return MirrorCardinal, nil
	case "triangular":
		return MirrorTriangular, nil
	default:
		return MirrorCardinal, fmt.Errorf("unknown mirror relation %q", s)
	}
}

// CardinalOffsets are the mirror offsets in their fixed enumeration order.
var CardinalOffsets = [4]Coordinate{
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
}

// MirrorPair is one (source, target) pairing around a pivot:
// Source = pivot + offset, Target = pivot - offset.
type MirrorPair struct {
	Source Coordinate
	Target Coordinate
}

// MirrorOffsets returns the offsets the relation uses around pivot.
func (m MirrorRelation) MirrorOffsets(pivot Coordinate) []Coordinate {
	if m == MirrorTriangular {
		return []Coordinate{leftOffset, rightOffset, BaseOffset(pivot)}
	}
	return CardinalOffsets[:]
}

// MirrorPairs returns every pair around pivot whose source and target are both
// in bounds, in offset order.
func MirrorPairs(pivot Coordinate, rows, cols int, relation MirrorRelation) []MirrorPair {
	offsets := relation.MirrorOffsets(pivot)
	pairs := make([]MirrorPair, 0, len(offsets))
	for _, off := range offsets {
		source := pivot.Add(off)
		target := pivot.Sub(off)
		if !source.IsValid(rows, cols) || !target.IsValid(rows, cols) {
			continue
		}
		pairs = append(pairs, MirrorPair{Source: source, Target: target})
	}
	return pairs
}

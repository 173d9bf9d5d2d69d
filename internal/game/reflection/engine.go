// Package reflection mirrors crystals across pivot cells.
//
// A pivot is any cell holding a crystal. For every mirror pair around the
// pivot, a crystal on the source side produces a Reflected crystal on the
// target side, provided the target is empty ground. Each new reflection
// becomes a pivot in turn, so propagation is a flood fill over the mirror
// relation. Cells only ever go from None to Reflected during a fill, and each
// cell is queued at most once, so a fill is bounded by the board size.
package reflection

import "github.com/mitchelldurbincs/CrystalCaves/internal/game/core"

// Engine runs reflection propagation under one mirror relation.
type Engine struct {
	relation core.MirrorRelation

	// onReflect, if set, is called each time a cell becomes Reflected.
	onReflect func(core.Coordinate)
}

// NewEngine creates a reflection engine for the given relation
func NewEngine(relation core.MirrorRelation) *Engine {
	return &Engine{relation: relation}
}

// Relation returns the mirror relation the engine propagates across
func (e *Engine) Relation() core.MirrorRelation { return e.relation }

// Propagate flood-fills reflections outward from seed and returns the newly
// reflected cells in the order they were created. A seed that is out of range
// or holds no crystal produces nothing.
func (e *Engine) Propagate(b *core.Board, seed core.Coordinate) []core.Coordinate {
	seedCell := b.GetCell(seed)
	if seedCell == nil || !seedCell.HasCrystal() {
		return nil
	}

	var reflected []core.Coordinate
	queue := []core.Coordinate{seed}

	for len(queue) > 0 {
		pivot := queue[0]
		queue = queue[1:]

		for _, pair := range core.MirrorPairs(pivot, b.Rows, b.Cols, e.relation) {
			source := b.GetCell(pair.Source)
			target := b.GetCell(pair.Target)
			if !source.HasCrystal() || !target.IsFree() {
				continue
			}

			target.Crystal = core.CrystalReflected
			reflected = append(reflected, pair.Target)
			if e.onReflect != nil {
				e.onReflect(pair.Target)
			}
			// Target was empty until now, so it has never been queued
			queue = append(queue, pair.Target)
		}
	}

	return reflected
}

// RecomputeAll rebuilds every reflection from scratch: Reflected cells are
// cleared, then propagation runs from each Base crystal in row-major order.
// It returns the number of Reflected cells afterwards.
func (e *Engine) RecomputeAll(b *core.Board) int {
	Demote(b)

	total := 0
	for i := range b.Cells {
		if b.Cells[i].IsBase() {
			total += len(e.Propagate(b, b.Coord(i)))
		}
	}
	return total
}

// Demote turns every Reflected crystal back into empty ground while leaving
// Base crystals in place. It returns how many cells were demoted.
func Demote(b *core.Board) int {
	n := 0
	for i := range b.Cells {
		if b.Cells[i].IsReflected() {
			b.Cells[i].Crystal = core.CrystalNone
			n++
		}
	}
	return n
}

// Package pathfind searches for a crystal path from a start crystal to the exit.
package pathfind

import "github.com/mitchelldurbincs/CrystalCaves/internal/game/core"

const noParent = -1

// FindStart picks the cell the search starts from. The preferred cell wins if
// it carries a crystal and is not blocked; otherwise the first Base crystal in
// row-major order is used. It returns false when no start exists.
func FindStart(b *core.Board, preferred core.Coordinate) (core.Coordinate, bool) {
	if cell := b.GetCell(preferred); cell != nil && cell.HasCrystal() && !cell.Blocked {
		return preferred, true
	}
	for i := range b.Cells {
		if b.Cells[i].IsBase() && !b.Cells[i].Blocked {
			return b.Coord(i), true
		}
	}
	return core.Coordinate{}, false
}

// Solve clears every path flag, then runs a breadth-first search over the
// movement graph restricted to traversable cells. The returned path runs from
// the start to exit inclusive and each of its cells is marked OnPath. An
// empty result means there is no start or the exit is unreachable.
func Solve(b *core.Board, exit core.Coordinate, preferred core.Coordinate) []core.Coordinate {
	b.ClearPath()

	if b.GetCell(exit) == nil {
		return nil
	}
	start, ok := FindStart(b, preferred)
	if !ok {
		return nil
	}

	parent := make([]int, b.Size())
	for i := range parent {
		parent[i] = noParent
	}
	visited := make([]bool, b.Size())

	startIdx := b.Idx(start)
	exitIdx := b.Idx(exit)
	visited[startIdx] = true
	queue := []int{startIdx}
	found := false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exitIdx {
			found = true
			break
		}

		for _, n := range core.MovementNeighbors(b.Coord(cur), b.Rows, b.Cols) {
			ni := b.Idx(n)
			if visited[ni] || !b.Cells[ni].IsTraversable() {
				continue
			}
			visited[ni] = true
			parent[ni] = cur
			queue = append(queue, ni)
		}
	}

	if !found {
		return nil
	}

	// Walk back from the exit, then reverse into start..exit order
	var path []core.Coordinate
	for idx := exitIdx; idx != noParent; idx = parent[idx] {
		path = append(path, b.Coord(idx))
		b.Cells[idx].OnPath = true
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Package layout maps board cells to screen triangles and back.
//
// Cells are laid out in rows of height TriSize. Within a row each cell starts
// half a triangle to the right of the previous one, so up and down triangles
// interlock:
//
//	up   (r+c even): (x, y+h) (x+s/2, y) (x+s, y+h)
//	down (r+c odd):  (x, y)   (x+s/2, y+h) (x+s, y)
package layout

import (
	"math"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

// Point is a screen position in pixels
type Point struct {
	X, Y float32
}

// Layout positions a rows x cols board on screen
type Layout struct {
	TriSize float32
	OffsetX float32
	OffsetY float32
	Rows    int
	Cols    int
}

func New(triSize, rows, cols int) Layout {
	return Layout{TriSize: float32(triSize), Rows: rows, Cols: cols}
}

// BoardSize returns the pixel extent of the whole board
func (l Layout) BoardSize() (w, h int) {
	w = int(math.Ceil(float64(float32(l.Cols+1) * l.TriSize / 2)))
	h = int(math.Ceil(float64(float32(l.Rows) * l.TriSize)))
	return w, h
}

// Origin returns the top-left corner of the cell's bounding box
func (l Layout) Origin(c core.Coordinate) Point {
	return Point{
		X: l.OffsetX + float32(c.Col)*l.TriSize/2,
		Y: l.OffsetY + float32(c.Row)*l.TriSize,
	}
}

// Vertices returns the triangle of cell c in drawing order
func (l Layout) Vertices(c core.Coordinate) [3]Point {
	o := l.Origin(c)
	s := l.TriSize
	if core.OrientationOf(c) == core.PointingUp {
		return [3]Point{{o.X, o.Y + s}, {o.X + s/2, o.Y}, {o.X + s, o.Y + s}}
	}
	return [3]Point{{o.X, o.Y}, {o.X + s/2, o.Y + s}, {o.X + s, o.Y}}
}

// Center returns the centroid of cell c, used for markers
func (l Layout) Center(c core.Coordinate) Point {
	v := l.Vertices(c)
	return Point{
		X: (v[0].X + v[1].X + v[2].X) / 3,
		Y: (v[0].Y + v[1].Y + v[2].Y) / 3,
	}
}

// CellAt returns the cell under the screen point, or false when the point is
// off the board. Points on a shared edge resolve to the leftmost cell.
func (l Layout) CellAt(x, y float32) (core.Coordinate, bool) {
	if l.TriSize <= 0 {
		return core.Coordinate{}, false
	}
	lx, ly := x-l.OffsetX, y-l.OffsetY
	if ly < 0 || lx < 0 {
		return core.Coordinate{}, false
	}

	row := int(ly / l.TriSize)
	if row >= l.Rows {
		return core.Coordinate{}, false
	}

	// Only the two or three triangles overlapping this column strip can match
	guess := int(lx / (l.TriSize / 2))
	p := Point{x, y}
	for col := guess - 1; col <= guess; col++ {
		c := core.NewCoordinate(row, col)
		if !c.IsValid(l.Rows, l.Cols) {
			continue
		}
		if contains(l.Vertices(c), p) {
			return c, true
		}
	}
	return core.Coordinate{}, false
}

// contains reports whether p lies inside or on the edge of triangle t
func contains(t [3]Point, p Point) bool {
	d1 := sign(p, t[0], t[1])
	d2 := sign(p, t[1], t[2])
	d3 := sign(p, t[2], t[0])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(p, a, b Point) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

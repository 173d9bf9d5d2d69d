package renderer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mitchelldurbincs/CrystalCaves/internal/common"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/ui/layout"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the texture every triangle is tinted from
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var LegalMoveColor = color.RGBA{100, 255, 100, 90} // Semi-transparent green

// maxBatchVertices keeps index values within uint16
const maxBatchVertices = 65535 / 3 * 3

// Frame is everything the board renderer needs for one draw
type Frame struct {
	Board      *core.Board
	Hovered    core.Coordinate
	HasHover   bool
	Path       []core.Coordinate // solved path in order
	Revealed   int               // how many cells of Path are visible
	LegalMoves []bool            // row-major mask of legal move targets
}

// BoardRenderer draws the triangle grid
type BoardRenderer struct {
	layout  layout.Layout
	palette common.Palette
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(l layout.Layout, palette common.Palette) *BoardRenderer {
	return &BoardRenderer{layout: l, palette: palette}
}

func (br *BoardRenderer) Layout() layout.Layout { return br.layout }

// Draw renders the board on the supplied Ebiten screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, f Frame) {
	if f.Board == nil {
		return
	}
	b := f.Board

	revealed := make(map[int]bool, f.Revealed)
	for i := 0; i < f.Revealed && i < len(f.Path); i++ {
		revealed[b.Idx(f.Path[i])] = true
	}

	vs := make([]ebiten.Vertex, 0, min(len(b.Cells)*3, maxBatchVertices))
	for i := range b.Cells {
		c := b.Coord(i)
		hovered := f.HasHover && c.Equal(f.Hovered)
		vs = br.appendTriangle(vs, c, br.palette.Color(core.RevealedCategoryOf(&b.Cells[i], hovered, revealed[i])))
		if len(vs) >= maxBatchVertices {
			drawBatch(screen, vs)
			vs = vs[:0]
		}
	}
	drawBatch(screen, vs)

	// Legal move hints sit under the outlines
	vs = vs[:0]
	for i, legal := range f.LegalMoves {
		if legal {
			vs = br.appendTriangle(vs, b.Coord(i), LegalMoveColor)
		}
	}
	drawBatch(screen, vs)

	br.drawGridLines(screen, b)
	br.drawPlayer(screen, b.Player)
}

func (br *BoardRenderer) appendTriangle(vs []ebiten.Vertex, c core.Coordinate, clr color.RGBA) []ebiten.Vertex {
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for _, p := range br.layout.Vertices(c) {
		vs = append(vs, ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	return vs
}

func drawBatch(screen *ebiten.Image, vs []ebiten.Vertex) {
	if len(vs) == 0 {
		return
	}
	is := make([]uint16, len(vs))
	for i := range is {
		is[i] = uint16(i)
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (br *BoardRenderer) drawGridLines(screen *ebiten.Image, b *core.Board) {
	for i := range b.Cells {
		v := br.layout.Vertices(b.Coord(i))
		for j := 0; j < 3; j++ {
			p, q := v[j], v[(j+1)%3]
			vector.StrokeLine(screen, p.X, p.Y, q.X, q.Y, 1, br.palette.GridLines, false)
		}
	}
}

func (br *BoardRenderer) drawPlayer(screen *ebiten.Image, player core.Coordinate) {
	center := br.layout.Center(player)
	radius := br.layout.TriSize / 6
	vector.DrawFilledCircle(screen, center.X, center.Y, radius, br.palette.Player, true)
}

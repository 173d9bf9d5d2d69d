package renderer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/CrystalCaves/internal/common"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

const (
	panelMargin     = 10
	panelLineHeight = 16
	swatchSize      = 10
)

var panelSubtleColor = color.Gray{200}

// legendEntries are drawn in this order under the statistics
var legendEntries = []struct {
	Label    string
	Category core.Category
}{
	{"Crystal", core.CategoryBase},
	{"Reflection", core.CategoryReflected},
	{"Exit", core.CategoryExit},
	{"Obstacle", core.CategoryBlocked},
	{"Path", core.CategoryPath},
	{"Hover", core.CategoryHovered},
}

// PanelInfo is the data shown in the side panel
type PanelInfo struct {
	Stats    game.Stats
	Relation core.MirrorRelation
	Status   string
}

// PanelRenderer draws the statistics panel to the right of the board
type PanelRenderer struct {
	x       int
	font    font.Face
	palette common.Palette
}

func NewPanelRenderer(x int, face font.Face, palette common.Palette) *PanelRenderer {
	return &PanelRenderer{x: x, font: face, palette: palette}
}

// Lines returns the text rows of the statistics block
func (pr *PanelRenderer) Lines(info PanelInfo) []string {
	s := info.Stats
	return []string{
		fmt.Sprintf("Turn: %d / %d", s.TurnCounter, s.Threshold),
		fmt.Sprintf("Crystals: %d", s.BaseCrystals),
		fmt.Sprintf("Reflections: %d", s.ReflectedCrystals),
		fmt.Sprintf("Obstacles: %d", s.BlockedCells),
		fmt.Sprintf("Rollovers: %d", s.Rollovers),
		fmt.Sprintf("Exits reached: %d", s.ExitsReached),
		fmt.Sprintf("Mirror: %s", info.Relation),
	}
}

// Draw renders the panel onto screen
func (pr *PanelRenderer) Draw(screen *ebiten.Image, info PanelInfo) {
	x := pr.x + panelMargin
	y := panelMargin + panelLineHeight

	for _, line := range pr.Lines(info) {
		text.Draw(screen, line, pr.font, x, y, color.White)
		y += panelLineHeight
	}

	y += panelLineHeight
	for _, entry := range legendEntries {
		vector.DrawFilledRect(screen, float32(x), float32(y-swatchSize), swatchSize, swatchSize, pr.palette.Color(entry.Category), false)
		text.Draw(screen, entry.Label, pr.font, x+swatchSize+6, y, panelSubtleColor)
		y += panelLineHeight
	}

	y += panelLineHeight
	text.Draw(screen, "Controls:", pr.font, x, y, color.White)
	for _, help := range []string{
		"L-click: crystal / move",
		"R-click: crystal",
		"R: solve path",
		"C: clear board",
		"E: export board",
		"Esc: quit",
	} {
		y += panelLineHeight - 1
		text.Draw(screen, help, pr.font, x, y, panelSubtleColor)
	}

	if info.Status != "" {
		y += 2 * panelLineHeight
		text.Draw(screen, info.Status, pr.font, x, y, color.White)
	}
}

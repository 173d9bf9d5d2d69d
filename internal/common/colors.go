package common

import (
	"image/color"

	"github.com/mitchelldurbincs/CrystalCaves/internal/config"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

// CategoryColors is the default fill for each render category
var CategoryColors = map[core.Category]color.RGBA{
	core.CategoryEmpty:     {255, 255, 255, 255}, // White
	core.CategoryBase:      {0, 255, 255, 255},   // Cyan
	core.CategoryReflected: {150, 255, 255, 255}, // Pale cyan
	core.CategoryExit:      {255, 0, 0, 255},     // Red
	core.CategoryBlocked:   {50, 50, 50, 255},    // Dark gray
	core.CategoryPath:      {0, 255, 0, 255},     // Green
	core.CategoryHovered:   {255, 255, 0, 255},   // Yellow
}

// UI colors
var (
	PlayerMarkerColor = color.RGBA{255, 0, 255, 255}
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	GridLineColor     = color.RGBA{0, 0, 0, 255}
	PanelTextColor    = color.RGBA{255, 255, 255, 255}
)

// Palette maps render categories and overlays to colors
type Palette struct {
	Categories map[core.Category]color.RGBA
	Player     color.RGBA
	Background color.RGBA
	GridLines  color.RGBA
}

// DefaultPalette returns a palette built from the package defaults
func DefaultPalette() Palette {
	categories := make(map[core.Category]color.RGBA, len(CategoryColors))
	for k, c := range CategoryColors {
		categories[k] = c
	}
	return Palette{
		Categories: categories,
		Player:     PlayerMarkerColor,
		Background: BackgroundColor,
		GridLines:  GridLineColor,
	}
}

// PaletteFromConfig builds a palette from configured RGB triples
func PaletteFromConfig(c config.ColorsConfig) Palette {
	return Palette{
		Categories: map[core.Category]color.RGBA{
			core.CategoryEmpty:     RGB(c.Empty),
			core.CategoryBase:      RGB(c.Base),
			core.CategoryReflected: RGB(c.Reflected),
			core.CategoryExit:      RGB(c.Exit),
			core.CategoryBlocked:   RGB(c.Blocked),
			core.CategoryPath:      RGB(c.Path),
			core.CategoryHovered:   RGB(c.Hovered),
		},
		Player:     RGB(c.Player),
		Background: RGB(c.Background),
		GridLines:  RGB(c.GridLines),
	}
}

// Color returns the fill for a category, falling back to the empty color
func (p Palette) Color(cat core.Category) color.RGBA {
	if c, ok := p.Categories[cat]; ok {
		return c
	}
	return CategoryColors[core.CategoryEmpty]
}

// RGB converts a validated RGB triple into an opaque color
func RGB(rgb [3]int) color.RGBA {
	return color.RGBA{
		R: uint8(Clamp(rgb[0], 0, 255)),
		G: uint8(Clamp(rgb[1], 0, 255)),
		B: uint8(Clamp(rgb[2], 0, 255)),
		A: 255,
	}
}

package game

import (
	"strings"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

// This file contains the terminal rendering of the board.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
	ColorHiCyan = "\033[96m"
)

const (
	UpSymbol        = "▲"
	DownSymbol      = "▼"
	BaseSymbol      = "M"
	ReflectedSymbol = "R"
	ExitSymbol      = "S"
	BlockedSymbol   = "X"
	PathSymbol      = "P"
	PlayerSymbol    = "@"
)

var categoryColors = map[core.Category]string{
	core.CategoryEmpty:     ColorGray,
	core.CategoryBase:      ColorCyan,
	core.CategoryReflected: ColorHiCyan,
	core.CategoryExit:      ColorRed,
	core.CategoryBlocked:   ColorWhite,
	core.CategoryPath:      ColorGreen,
	core.CategoryHovered:   ColorYellow,
}

// BoardString returns an ANSI colored dump of the board with the player marked
func (e *Engine) BoardString() string {
	b := e.board

	// Each cell takes 2 visible chars plus ~10 chars of escape codes
	var sb strings.Builder
	sb.Grow((b.Cols*12+10)*(b.Rows+3) + 100)

	// Header row
	sb.WriteString("   ")
	for c := 0; c < b.Cols; c++ {
		sb.WriteString(core.IntToStringFixedWidth(c, 2))
	}
	sb.WriteString("\n")

	for r := 0; r < b.Rows; r++ {
		sb.WriteString(core.IntToStringFixedWidth(r, 2))
		sb.WriteString(" ")
		for c := 0; c < b.Cols; c++ {
			coord := core.NewCoordinate(r, c)
			writeCell(&sb, coord, b.GetCell(coord), coord.Equal(b.Player))
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString(UpSymbol + DownSymbol + "=empty ")
	sb.WriteString(BaseSymbol + "=crystal ")
	sb.WriteString(ReflectedSymbol + "=reflected ")
	sb.WriteString(ExitSymbol + "=exit ")
	sb.WriteString(BlockedSymbol + "=blocked ")
	sb.WriteString(PathSymbol + "=path ")
	sb.WriteString(PlayerSymbol + "=player\n")

	return sb.String()
}

// writeCell writes one two-character cell directly to sb
func writeCell(sb *strings.Builder, coord core.Coordinate, cell *core.Cell, isPlayer bool) {
	sb.WriteString(" ")
	if isPlayer {
		sb.WriteString(ColorPurple)
		sb.WriteString(PlayerSymbol)
		sb.WriteString(ColorReset)
		return
	}

	cat := core.CategoryOf(cell, false)
	sb.WriteString(categoryColors[cat])
	sb.WriteString(cellSymbol(cat, coord))
	sb.WriteString(ColorReset)
}

func cellSymbol(cat core.Category, coord core.Coordinate) string {
	switch cat {
	case core.CategoryBase:
		return BaseSymbol
	case core.CategoryReflected:
		return ReflectedSymbol
	case core.CategoryExit:
		return ExitSymbol
	case core.CategoryBlocked:
		return BlockedSymbol
	case core.CategoryPath:
		return PathSymbol
	}
	if core.OrientationOf(coord) == core.PointingUp {
		return UpSymbol
	}
	return DownSymbol
}

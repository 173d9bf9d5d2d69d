package core

// Category is the visual class a renderer draws a cell as.
type Category int

const (
	CategoryEmpty Category = iota
	CategoryBase
	CategoryReflected
	CategoryExit
	CategoryBlocked
	CategoryPath
	CategoryHovered
)

func (c Category) String() string {
	switch c {
	case CategoryBase:
		return "base"
	case CategoryReflected:
		return "reflected"
	case CategoryExit:
		return "exit"
	case CategoryBlocked:
		return "blocked"
	case CategoryPath:
		return "path"
	case CategoryHovered:
		return "hovered"
	default:
		return "empty"
	}
}

// CategoryOf derives the render category of a cell.
// Precedence: hovered > path > blocked > exit > reflected > base > empty.
// Hover is UI state and is passed in by the caller.
func CategoryOf(cell *Cell, hovered bool) Category {
	switch {
	case hovered:
		return CategoryHovered
	case cell.OnPath:
		return CategoryPath
	case cell.Blocked:
		return CategoryBlocked
	case cell.Exit:
		return CategoryExit
	case cell.IsReflected():
		return CategoryReflected
	case cell.IsBase():
		return CategoryBase
	default:
		return CategoryEmpty
	}
}

// RevealedCategoryOf is CategoryOf for a board whose path is being revealed
// cell by cell. Path cells not yet revealed keep their underlying category.
func RevealedCategoryOf(cell *Cell, hovered, revealed bool) Category {
	if cell.OnPath && !revealed {
		hidden := *cell
		hidden.OnPath = false
		return CategoryOf(&hidden, hovered)
	}
	return CategoryOf(cell, hovered)
}

package dispatch

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

// Status returns the side panel message for an applied command. Changes that
// need no comment return an empty string.
func Status(out game.Outcome, err error) string {
	if err != nil {
		var cmdErr *core.CommandError
		switch {
		case errors.Is(err, game.ErrNoExporter):
			return "Export: no path configured"
		case errors.As(err, &cmdErr):
			return fmt.Sprintf("Rejected: %v", cmdErr.Err)
		default:
			return fmt.Sprintf("Error: %v", err)
		}
	}

	switch {
	case out.ExitReached:
		return "Exit reached!"
	case out.RolledOver:
		return fmt.Sprintf("The cave shifts: %d new obstacles", len(out.NewObstacles))
	case out.Command == core.CommandSolvePath && len(out.Path) == 0:
		return "No path to the exit"
	case out.Command == core.CommandSolvePath:
		return fmt.Sprintf("Path found: %d cells", len(out.Path))
	case out.Command == core.CommandClearBoard:
		return "Board cleared"
	case out.Command == core.CommandExportBoard:
		return "Board exported"
	}
	return ""
}

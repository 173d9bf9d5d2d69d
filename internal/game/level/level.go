// Package level loads fixed starting layouts from YAML files.
package level

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"gopkg.in/yaml.v3"
)

var ErrInvalidLevel = errors.New("invalid level")

// Size represents board dimensions.
type Size struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Cell is a single coordinate in a level file.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (c Cell) Coordinate() core.Coordinate { return core.NewCoordinate(c.Row, c.Col) }

// Level represents the YAML structure of a level file.
type Level struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Size     Size   `yaml:"size"`
	Exit     Cell   `yaml:"exit"`
	Player   Cell   `yaml:"player"`
	Blocked  []Cell `yaml:"blocked,omitempty"`
	Crystals []Cell `yaml:"crystals,omitempty"`

	FilePath string `yaml:"-"`
}

// ParseYAML parses and validates a YAML level.
func ParseYAML(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a single level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	l, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	l.FilePath = path
	return l, nil
}

// Validate checks the layout against the board invariants: every coordinate
// in range, the exit never blocked, and the player never on a blocked cell.
func (l *Level) Validate() error {
	if l.Size.Rows <= 0 || l.Size.Cols <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Size.Rows, l.Size.Cols)
	}

	inBounds := func(what string, c Cell) error {
		if !c.Coordinate().IsValid(l.Size.Rows, l.Size.Cols) {
			return fmt.Errorf("%w: %s %s out of range", ErrInvalidLevel, what, c.Coordinate())
		}
		return nil
	}

	if err := inBounds("exit", l.Exit); err != nil {
		return err
	}
	if err := inBounds("player", l.Player); err != nil {
		return err
	}

	blocked := make(map[Cell]bool, len(l.Blocked))
	for _, b := range l.Blocked {
		if err := inBounds("blocked cell", b); err != nil {
			return err
		}
		if b == l.Exit {
			return fmt.Errorf("%w: exit %s is blocked", ErrInvalidLevel, b.Coordinate())
		}
		if b == l.Player {
			return fmt.Errorf("%w: player %s is blocked", ErrInvalidLevel, b.Coordinate())
		}
		blocked[b] = true
	}

	for _, c := range l.Crystals {
		if err := inBounds("crystal", c); err != nil {
			return err
		}
		if blocked[c] || c == l.Exit {
			return fmt.Errorf("%w: crystal %s on a blocked cell or the exit", ErrInvalidLevel, c.Coordinate())
		}
	}

	return nil
}

// Build creates the starting board. Crystals become Base crystals;
// reflections are left for the engine to recompute.
func (l *Level) Build() (*core.Board, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	board := core.NewBoard(l.Size.Rows, l.Size.Cols)
	for _, b := range l.Blocked {
		if err := board.SetBlocked(b.Coordinate()); err != nil {
			return nil, err
		}
	}
	if err := board.SetExit(l.Exit.Coordinate()); err != nil {
		return nil, err
	}
	for _, c := range l.Crystals {
		board.GetCell(c.Coordinate()).Crystal = core.CrystalBase
	}
	board.Player = l.Player.Coordinate()

	return board, nil
}

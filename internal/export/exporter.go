// Package export writes the one-line-per-row text snapshot of a board.
//
// Each cell is a single token, space separated, with a trailing space before
// the newline:
//
//	S exit, P solved path, X blocked, R reflected crystal, M base crystal, . empty
//
// When several flags apply the first token in that list wins.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

const (
	TokenExit      = 'S'
	TokenPath      = 'P'
	TokenBlocked   = 'X'
	TokenReflected = 'R'
	TokenBase      = 'M'
	TokenEmpty     = '.'
)

var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Exporter persists a board snapshot somewhere
type Exporter interface {
	Export(b *core.Board) error
	Destination() string
}

// Token returns the snapshot character for a cell
func Token(cell *core.Cell) byte {
	switch {
	case cell.Exit:
		return TokenExit
	case cell.OnPath:
		return TokenPath
	case cell.Blocked:
		return TokenBlocked
	case cell.IsReflected():
		return TokenReflected
	case cell.IsBase():
		return TokenBase
	default:
		return TokenEmpty
	}
}

// Write streams the snapshot of b to w in row-major order
func Write(w io.Writer, b *core.Board) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			bw.WriteByte(Token(&b.Cells[r*b.Cols+c]))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Parse reads a snapshot back into a token grid. Every row must have the
// same number of single-character tokens.
func Parse(r io.Reader) ([][]byte, error) {
	var grid [][]byte
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]byte, len(fields))
		for i, f := range fields {
			if len(f) != 1 || !isToken(f[0]) {
				return nil, fmt.Errorf("%w: line %d: unexpected token %q", ErrMalformedSnapshot, line, f)
			}
			row[i] = f[0]
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedSnapshot, line, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

func isToken(b byte) bool {
	switch b {
	case TokenExit, TokenPath, TokenBlocked, TokenReflected, TokenBase, TokenEmpty:
		return true
	}
	return false
}

// FileExporter overwrites Path with a fresh snapshot on every export
type FileExporter struct {
	Path string
}

func NewFileExporter(path string) *FileExporter {
	return &FileExporter{Path: path}
}

func (f *FileExporter) Destination() string { return f.Path }

// Export writes the snapshot, truncating any previous content
func (f *FileExporter) Export(b *core.Board) error {
	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", f.Path, err)
	}
	if err := Write(file, b); err != nil {
		file.Close()
		return fmt.Errorf("writing snapshot %s: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing snapshot %s: %w", f.Path, err)
	}
	return nil
}

// WriterExporter writes snapshots to an arbitrary writer, such as stdout
type WriterExporter struct {
	W    io.Writer
	Name string
}

func (w *WriterExporter) Destination() string { return w.Name }

func (w *WriterExporter) Export(b *core.Board) error {
	return Write(w.W, b)
}

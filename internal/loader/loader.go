package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

var (
	ErrRowCount  = errors.New("puzzle must have exactly 9 rows")
	ErrCellCount = errors.New("puzzle row must have exactly 9 cells")
	ErrBadCell   = errors.New("puzzle cell must be a digit 0-9, '.' or '_'")
	ErrConflict  = errors.New("puzzle violates row/column/box constraints")
)

// FileLoader parses text puzzles: nine non-blank lines of nine cells
// each, where '0', '.' and '_' all mean empty, spaces between cells are
// ignored, and '#' starts a comment line. Givens become fixed cells on
// the returned board, which is validated before being handed to the
// engine.
type FileLoader struct {
	validator ports.Validator
}

func New(v ports.Validator) *FileLoader { return &FileLoader{validator: v} }

func (l *FileLoader) Load(path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse reads a puzzle from r. Exposed separately so callers can load
// from stdin or fixtures.
func (l *FileLoader) Parse(r io.Reader) (*domain.Board, error) {
	var b domain.Board
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if row >= 9 {
			return nil, fmt.Errorf("%w: more than 9 rows", ErrRowCount)
		}
		col := 0
		for _, ch := range line {
			var v uint8
			switch {
			case ch == ' ' || ch == '\t':
				continue
			case ch == '.' || ch == '_' || ch == '0':
				v = 0
			case ch >= '1' && ch <= '9':
				v = uint8(ch - '0')
			default:
				return nil, fmt.Errorf("%w: %q in row %d", ErrBadCell, ch, row+1)
			}
			if col >= 9 {
				return nil, fmt.Errorf("%w: row %d is too long", ErrCellCount, row+1)
			}
			if v != 0 {
				b.Values[row][col] = v
				b.Fixed[row][col] = true
			}
			col++
		}
		if col != 9 {
			return nil, fmt.Errorf("%w: row %d has %d", ErrCellCount, row+1, col)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != 9 {
		return nil, fmt.Errorf("%w: got %d", ErrRowCount, row)
	}
	if l.validator != nil {
		ok, conflicts, err := l.validator.Validate(context.Background(), &b)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %d conflicting cells", ErrConflict, len(conflicts))
		}
	}
	return &b, nil
}

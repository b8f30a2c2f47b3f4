package validator

import (
	"context"

	"svw.info/sudoku-cli/internal/domain"
)

// FastValidator scans every row, column, and box with a digit bitmask
// and reports the coordinates of duplicated values. It runs before a
// solve: the engine itself assumes a conflict-free board.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(unit [9]domain.CellCoord) {
		m := 0
		for _, cc := range unit {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}

	var unit [9]domain.CellCoord
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			unit[j] = domain.CellCoord{Row: i, Col: j}
		}
		scan(unit)
		for j := 0; j < 9; j++ {
			unit[j] = domain.CellCoord{Row: j, Col: i}
		}
		scan(unit)
		br, bc := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			unit[j] = domain.CellCoord{Row: br + j/3, Col: bc + j%3}
		}
		scan(unit)
	}
	return len(conf) == 0, conf, nil
}

package solver

import (
	"context"
	"math/rand"

	"svw.info/sudoku-cli/internal/domain"
)

// RandomSolution fills an empty board into a complete valid grid,
// branching with the usual most-constrained-cell selection but trying
// candidate values in rng order instead of ascending. The generator uses
// this to seed carving.
func RandomSolution(ctx context.Context, rng *rand.Rand) (domain.Board, bool) {
	g := newGrid(&domain.Board{})
	var vals [9]uint8

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		cell, mask, _, _, ok := selectNext(g)
		if !ok {
			return true
		}
		n := 0
		for v := uint8(1); v <= 9; v++ {
			if mask&(1<<v) != 0 {
				vals[n] = v
				n++
			}
		}
		rng.Shuffle(n, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		for i := 0; i < n; i++ {
			g.assign(cell.Row, cell.Col, vals[i])
			if dfs() {
				return true
			}
			g.unassign(cell.Row, cell.Col)
		}
		return false
	}

	if !dfs() {
		return domain.Board{}, false
	}
	return domain.Board{Values: g.cells}, true
}

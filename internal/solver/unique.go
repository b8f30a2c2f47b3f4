package solver

import (
	"context"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// Unique counts completions up to 2 with the same heuristic search and
// reports whether exactly one exists. Unlike Solve it always undoes its
// assignments, so the walk can exhaust sibling branches after a hit.
func (s *MRVSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := s.now()
	g := newGrid(b)
	nodes, count := 0, 0

	var dfs func() bool // true = stop early
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true
		}
		cell, mask, _, _, ok := selectNext(g)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			if mask&(1<<v) == 0 {
				continue
			}
			nodes++
			g.assign(cell.Row, cell.Col, v)
			stop := dfs()
			g.unassign(cell.Row, cell.Col)
			if stop {
				return true
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: s.now().Sub(start)}, nil
}

package solver

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// BasicSolver scans for the first empty cell in row-major order and
// tries values 1..9 ascending — no heuristics, no candidate tracking.
// Kept as a baseline engine behind the --engine flag; it records no
// trace and relies on context cancellation for its time budget.
type BasicSolver struct{}

func NewBasicSolver() *BasicSolver { return &BasicSolver{} }

func (s *BasicSolver) Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}

	outcome := domain.Unsolvable
	if dfs() {
		outcome = domain.Solved
	} else if ctx.Err() != nil {
		outcome = domain.TimedOut
	}
	res := &domain.SolveResult{Outcome: outcome, Board: domain.Board{Values: grid, Fixed: b.Fixed}}
	return res, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BasicSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

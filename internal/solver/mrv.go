package solver

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// DefaultBudget is the wall-clock limit for one solve invocation.
const DefaultBudget = time.Hour

// searchState drives the backtracking loop. deadEnd is internal control
// flow only and never leaves Solve; solvedState and timedOutState unwind
// the recursion immediately without undoing assignments.
type searchState int

const (
	deadEnd searchState = iota
	solvedState
	timedOutState
)

// MRVSolver is a recursive backtracking solver that branches on the most
// constrained cell first (minimum remaining values, then degree, then
// position) and tries candidate values in ascending order.
type MRVSolver struct {
	budget time.Duration
	now    func() time.Time
}

// Option configures an MRVSolver.
type Option func(*MRVSolver)

// WithBudget overrides the one-hour wall-clock budget.
func WithBudget(d time.Duration) Option {
	return func(s *MRVSolver) { s.budget = d }
}

// WithClock injects the time source used for deadline checks, so tests
// can expire the budget without waiting.
func WithClock(now func() time.Time) Option {
	return func(s *MRVSolver) { s.now = now }
}

func NewMRVSolver(opts ...Option) *MRVSolver {
	s := &MRVSolver{budget: DefaultBudget, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Solve searches for a completion of b. The board must already be free
// of peer conflicts (the loader's job). The returned result is Solved
// with a complete board, Unsolvable after exhausting the tree, or
// TimedOut once the budget deadline passes; the deadline is polled at
// every recursion entry, so abort latency is bounded by one step.
// Context cancellation is treated like an expired budget.
func (s *MRVSolver) Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, ports.Stats, error) {
	start := s.now()
	deadline := start.Add(s.budget)
	g := newGrid(b)
	rec := newTraceRecorder()
	nodes := 0

	var dfs func() searchState
	dfs = func() searchState {
		if ctx.Err() != nil || s.now().After(deadline) {
			return timedOutState
		}
		cell, mask, size, deg, ok := selectNext(g)
		if !ok {
			return solvedState
		}
		if mask == 0 {
			return deadEnd
		}
		for v := uint8(1); v <= 9; v++ {
			if mask&(1<<v) == 0 {
				continue
			}
			nodes++
			g.assign(cell.Row, cell.Col, v)
			rec.record(cell, size, deg, v)
			if st := dfs(); st != deadEnd {
				return st
			}
			g.unassign(cell.Row, cell.Col)
		}
		return deadEnd
	}

	outcome := domain.Unsolvable
	switch dfs() {
	case solvedState:
		outcome = domain.Solved
	case timedOutState:
		outcome = domain.TimedOut
	}
	res := &domain.SolveResult{Outcome: outcome, Board: g.board(), Trace: rec.snapshot()}
	return res, ports.Stats{Nodes: nodes, Duration: s.now().Sub(start)}, nil
}

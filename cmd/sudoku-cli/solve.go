package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/loader"
	"svw.info/sudoku-cli/internal/ports"
	"svw.info/sudoku-cli/internal/render"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/storage"
	"svw.info/sudoku-cli/internal/usecase"
	"svw.info/sudoku-cli/internal/validator"
)

var (
	solveBudget      time.Duration
	solveEngine      string
	solveCheckUnique bool
	solveSaveDir     string
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve a puzzle file by heuristic backtracking",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().DurationVar(&solveBudget, "budget", solver.DefaultBudget, "wall-clock search budget")
	solveCmd.Flags().StringVar(&solveEngine, "engine", "mrv", "search engine: mrv|basic")
	solveCmd.Flags().BoolVar(&solveCheckUnique, "check-unique", false, "also report whether the solution is unique")
	solveCmd.Flags().StringVar(&solveSaveDir, "save-dir", "", "persist the solve report as JSON under this directory")
}

func newEngine(ctx context.Context) (ports.Solver, context.Context, context.CancelFunc, error) {
	switch strings.ToLower(strings.TrimSpace(solveEngine)) {
	case "mrv", "":
		return solver.NewMRVSolver(solver.WithBudget(solveBudget)), ctx, func() {}, nil
	case "basic", "backtrack":
		// The basic engine has no deadline of its own; the budget rides
		// on the context instead.
		ctx, cancel := context.WithTimeout(ctx, solveBudget)
		return solver.NewBasicSolver(), ctx, cancel, nil
	default:
		return nil, ctx, nil, fmt.Errorf("unknown engine %q (want mrv or basic)", solveEngine)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()
	out := cmd.OutOrStdout()

	s, ctx, cancel, err := newEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer cancel()

	v := validator.New()
	var st ports.Storage
	if solveSaveDir != "" {
		st = storage.NewFS(solveSaveDir)
	}
	uc := usecase.NewService(s, nil, v, loader.New(v), st)

	path := args[0]
	board, err := uc.LoadPuzzle(path)
	if err != nil {
		return fmt.Errorf("load puzzle: %w", err)
	}
	logger.Info("puzzle loaded",
		zap.String("path", path),
		zap.Int("givens", countGivens(board)),
		zap.String("engine", solveEngine),
		zap.Duration("budget", solveBudget),
	)

	res, stats, err := uc.Solve(ctx, board)
	if err != nil {
		return err
	}
	logger.Debug("search finished",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("nodes", stats.Nodes),
		zap.Duration("dur", stats.Duration),
	)

	fmt.Fprintln(out, render.Outcome(res.Outcome, stats))
	fmt.Fprint(out, render.Board(&res.Board))
	fmt.Fprint(out, render.Trace(res.Trace))

	if solveCheckUnique && res.Outcome == domain.Solved {
		unique, _, err := uc.Unique(ctx, board)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "unique solution: %v\n", unique)
	}

	if st != nil {
		rep := &domain.Report{
			ID:         fmt.Sprintf("%s-%d", strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), time.Now().Unix()),
			Source:     path,
			Puzzle:     *board,
			Result:     *res,
			Nodes:      stats.Nodes,
			DurationMs: stats.Duration.Milliseconds(),
			CreatedAt:  time.Now().UnixNano(),
		}
		if err := uc.SaveReport(ctx, rep); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		logger.Info("report saved", zap.String("id", rep.ID), zap.String("dir", solveSaveDir))
	}

	switch res.Outcome {
	case domain.Unsolvable:
		os.Exit(exitUnsolvable)
	case domain.TimedOut:
		os.Exit(exitTimedOut)
	}
	return nil
}

func countGivens(b *domain.Board) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

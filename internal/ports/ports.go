package ports

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs one search over a validated board and can test uniqueness.
// Solve never fails as such: unsolvable and timed-out are outcomes on the
// result, not errors.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Loader reads a puzzle file into a validated Board.
type Loader interface {
	Load(path string) (*domain.Board, error)
}

// Storage persists and retrieves solve reports as JSON.
type Storage interface {
	Save(ctx context.Context, r *domain.Report) error
	Load(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context) ([]domain.ReportMeta, error)
}

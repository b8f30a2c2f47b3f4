package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// Service wires the solver, generator, validator, loader, and storage
// behind one facade for the CLI layer.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Loader    ports.Loader
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, l ports.Loader, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Loader: l, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) LoadPuzzle(path string) (*domain.Board, error) {
	if u.Loader == nil {
		return nil, errNotConfigured
	}
	return u.Loader.Load(path)
}

// Persistence
func (u *Service) SaveReport(ctx context.Context, r *domain.Report) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, r)
}

func (u *Service) LoadReport(ctx context.Context, id string) (*domain.Report, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) ListReports(ctx context.Context) ([]domain.ReportMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

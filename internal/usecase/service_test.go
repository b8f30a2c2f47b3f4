package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/validator"
)

func TestUnconfiguredDependenciesAreGuarded(t *testing.T) {
	u := NewService(nil, nil, nil, nil, nil)
	ctx := context.Background()

	_, _, err := u.Solve(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Unique(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Generate(ctx, 1, domain.Easy)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Validate(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)
	_, err = u.LoadPuzzle("x")
	require.ErrorIs(t, err, errNotConfigured)
	require.ErrorIs(t, u.SaveReport(ctx, nil), errNotConfigured)
	_, err = u.LoadReport(ctx, "x")
	require.ErrorIs(t, err, errNotConfigured)
	_, err = u.ListReports(ctx)
	require.ErrorIs(t, err, errNotConfigured)
}

func TestServiceDelegates(t *testing.T) {
	u := NewService(solver.NewMRVSolver(), nil, validator.New(), nil, nil)
	ctx := context.Background()

	ok, conflicts, err := u.Validate(ctx, &domain.Board{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)

	res, _, err := u.Solve(ctx, &domain.Board{})
	require.NoError(t, err)
	require.Equal(t, domain.Solved, res.Outcome)
}

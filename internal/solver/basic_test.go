package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cli/internal/domain"
)

func TestBasicSolveClassic(t *testing.T) {
	res, st, err := NewBasicSolver().Solve(context.Background(), parseBoard(t, classicPuzzle))
	require.NoError(t, err)
	require.Equal(t, domain.Solved, res.Outcome)
	require.Equal(t, solutionValues(t, classicSolution), res.Board.Values)
	require.Positive(t, st.Nodes)
	require.Empty(t, res.Trace, "the basic engine records no decisions")
}

func TestBasicSolveAgreesWithMRV(t *testing.T) {
	b := parseBoard(t, seventeenCluePuzzle)
	basic, _, err := NewBasicSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	mrv, _, err := NewMRVSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, mrv.Board.Values, basic.Board.Values, "unique puzzle, engines must agree")
}

func TestBasicSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, _, err := NewBasicSolver().Solve(ctx, parseBoard(t, classicPuzzle))
	require.NoError(t, err)
	require.Equal(t, domain.TimedOut, res.Outcome)
}

func TestBasicUnique(t *testing.T) {
	unique, _, err := NewBasicSolver().Unique(context.Background(), parseBoard(t, classicPuzzle))
	require.NoError(t, err)
	require.True(t, unique)

	unique, _, err = NewBasicSolver().Unique(context.Background(), &domain.Board{})
	require.NoError(t, err)
	require.False(t, unique)
}

package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewMRVSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			p, _, err := g.Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)

			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Board.Values[r][c] != 0 {
						givens++
						require.True(t, p.Board.Fixed[r][c], "remaining clues stay fixed")
					}
				}
			}
			require.GreaterOrEqual(t, givens, 17, "below the known clue minimum")
			require.LessOrEqual(t, givens, 81)

			ok, conflicts, err := validator.New().Validate(ctx, &p.Board)
			require.NoError(t, err)
			require.Truef(t, ok, "generated puzzle has conflicts: %v", conflicts)

			unique, _, err := s.Unique(ctx, &p.Board)
			require.NoError(t, err)
			require.True(t, unique, "generated puzzle must have exactly one completion")
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	g := NewUniqueGenerator(solver.NewMRVSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	require.Equal(t, a.Board.Values, b.Board.Values, "same seed, same puzzle")
}

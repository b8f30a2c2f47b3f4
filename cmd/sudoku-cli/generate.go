package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/generator"
	"svw.info/sudoku-cli/internal/render"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/usecase"
)

var (
	genSeed       int64
	genDifficulty string
	genOut        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique solution",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed (0 = time-based)")
	generateCmd.Flags().StringVar(&genDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	generateCmd.Flags().StringVar(&genOut, "out", "", "write the puzzle in solve's text format to this file")
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

// puzzleText renders a board in the loader's text format, dots for
// empties, so generate output feeds straight back into solve.
func puzzleText(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()
	out := cmd.OutOrStdout()

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := parseDifficulty(genDifficulty)

	s := solver.NewMRVSolver()
	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), nil, nil, nil)

	p, stats, err := uc.Generate(cmd.Context(), seed, diff)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Info("puzzle generated",
		zap.Int64("seed", seed),
		zap.Stringer("difficulty", diff),
		zap.Int("nodes", stats.Nodes),
		zap.Duration("dur", stats.Duration),
	)

	fmt.Fprint(out, render.Board(&p.Board))
	if genOut != "" {
		if err := os.WriteFile(genOut, []byte(puzzleText(&p.Board)), 0o644); err != nil {
			return fmt.Errorf("write puzzle: %w", err)
		}
		fmt.Fprintf(out, "written to %s (seed %d)\n", genOut, seed)
	}
	return nil
}

package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
	"svw.info/sudoku-cli/internal/solver"
)

// UniqueGenerator carves puzzles out of a full random solution while a
// uniqueness probe keeps exactly one completion reachable.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// carveBudget bounds the carving loop so generation stays interactive
// even when the uniqueness probe gets slow near the clue minimum.
const carveBudget = 900 * time.Millisecond

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution from seed at the
// target difficulty. Fewer givens may remain than the target if the
// carve budget runs out first.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, ok := solver.RandomSolution(ctx, rng)
	if !ok {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := full.Values
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}

	positions := rng.Perm(81)
	target := targetGivens(diff)
	deadline := start.Add(carveBudget)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if countGivens(&puz) <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if !unique {
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func countGivens(b *[9][9]uint8) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

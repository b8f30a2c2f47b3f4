package solver

import (
	"strings"
	"testing"

	"svw.info/sudoku-cli/internal/domain"
)

// parseBoard turns nine rows of nine digits ('0' or '.' = empty) into a
// Board, marking givens as fixed.
func parseBoard(t *testing.T, s string) *domain.Board {
	t.Helper()
	var b domain.Board
	rows := strings.Fields(strings.TrimSpace(s))
	if len(rows) != 9 {
		t.Fatalf("fixture has %d rows, want 9", len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			t.Fatalf("fixture row %d has %d cells, want 9", r, len(row))
		}
		for c, ch := range row {
			if ch >= '1' && ch <= '9' {
				b.Values[r][c] = uint8(ch - '0')
				b.Fixed[r][c] = true
			}
		}
	}
	return &b
}

// A classic solvable puzzle and its unique completion.
const classicPuzzle = `
530070000
600195000
098000060
800060003
400803001
700020006
060000280
000419005
000080079
`

const classicSolution = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

// A well-known 17-clue puzzle with a unique completion.
const seventeenCluePuzzle = `
000000010
400000000
020000000
000050407
008000300
001090000
300400200
050100000
000806000
`

const seventeenClueSolution = `
693784512
487512936
125963874
932651487
568247391
741398625
319475268
856129743
274836159
`

// classicSolution with one cell blanked: exactly one empty cell whose
// domain is the single value 5 and whose degree is 0.
const oneCellPuzzle = `
534678912
672195348
198342567
859761423
426803791
713924856
961537284
287419635
345286179
`

// Cell (0,8) sees 1..8 along its row and 9 up its column, leaving an
// empty domain before any search step.
const contradictionPuzzle = `
123456780
000000000
000000000
000000000
000000000
000000000
000000000
000000000
000000009
`

// Cells (0,7) and (0,8) both have domain {8,9}; the 1 at (3,7) lowers
// the degree of (0,7) to 12 while (0,8) keeps 13.
const degreeTiePuzzle = `
123456700
000000000
000000000
000000010
000000000
000000000
000000000
000000000
000000000
`

func solutionValues(t *testing.T, s string) [9][9]uint8 {
	t.Helper()
	return parseBoard(t, s).Values
}

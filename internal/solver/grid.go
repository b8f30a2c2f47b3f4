package solver

import (
	"fmt"
	"math/bits"

	"svw.info/sudoku-cli/internal/domain"
)

// fullMask has bits 1..9 set, the domain of a fully unconstrained cell.
const fullMask = uint16(0x3FE)

// grid tracks cell values plus, per row, column, and box, the set of
// digits already placed there as a bitmask. A cell's domain is the
// complement of the union of its three unit masks, so assign/unassign
// are O(1) and a domain query can never drift from the values actually
// on the board.
type grid struct {
	cells [9][9]uint8
	fixed [9][9]bool
	row   [9]uint16
	col   [9]uint16
	box   [9]uint16
	empty int
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

func newGrid(b *domain.Board) *grid {
	g := &grid{cells: b.Values, fixed: b.Fixed, empty: 81}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g.cells[r][c]; v != 0 {
				bit := uint16(1) << v
				g.row[r] |= bit
				g.col[c] |= bit
				g.box[boxOf(r, c)] |= bit
				g.fixed[r][c] = true // givens are never unassigned
				g.empty--
			}
		}
	}
	return g
}

func (g *grid) isEmpty(r, c int) bool { return g.cells[r][c] == 0 }

// domainMask returns the legal values for cell (r,c) as a bitmask over
// bits 1..9: exactly {1..9} minus everything held by its 20 peers.
func (g *grid) domainMask(r, c int) uint16 {
	return fullMask &^ (g.row[r] | g.col[c] | g.box[boxOf(r, c)])
}

func (g *grid) domainSize(r, c int) int {
	return bits.OnesCount16(g.domainMask(r, c))
}

// degree counts the cell's currently empty peers on the live board.
func (g *grid) degree(r, c int) int {
	n := 0
	for i := 0; i < 9; i++ {
		if i != c && g.cells[r][i] == 0 {
			n++
		}
		if i != r && g.cells[i][c] == 0 {
			n++
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if rr == r || cc == c {
				continue // counted by the row/col pass (or is the cell itself)
			}
			if g.cells[rr][cc] == 0 {
				n++
			}
		}
	}
	return n
}

// assign places v at an empty cell and shrinks the domains of its empty
// peers. The caller must draw v from the cell's current domain; violating
// that is a bug in the search, not an input condition.
func (g *grid) assign(r, c int, v uint8) {
	if g.cells[r][c] != 0 {
		panic(fmt.Sprintf("solver: assign to occupied cell (%d,%d)", r, c))
	}
	bit := uint16(1) << v
	if g.domainMask(r, c)&bit == 0 {
		panic(fmt.Sprintf("solver: assign %d outside domain of cell (%d,%d)", v, r, c))
	}
	g.cells[r][c] = v
	g.row[r] |= bit
	g.col[c] |= bit
	g.box[boxOf(r, c)] |= bit
	g.empty--
}

// unassign reverts a search assignment, restoring the cell and every
// affected peer domain to their prior state.
func (g *grid) unassign(r, c int) {
	v := g.cells[r][c]
	if v == 0 {
		panic(fmt.Sprintf("solver: unassign of empty cell (%d,%d)", r, c))
	}
	if g.fixed[r][c] {
		panic(fmt.Sprintf("solver: unassign of fixed given (%d,%d)", r, c))
	}
	mask := ^(uint16(1) << v)
	g.cells[r][c] = 0
	g.row[r] &= mask
	g.col[c] &= mask
	g.box[boxOf(r, c)] &= mask
	g.empty++
}

func (g *grid) board() domain.Board {
	b := domain.Board{Values: g.cells}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = g.fixed[r][c] && g.cells[r][c] != 0
		}
	}
	return b
}

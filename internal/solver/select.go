package solver

import (
	"math/bits"

	"svw.info/sudoku-cli/internal/domain"
)

// selectNext picks the empty cell to branch on next: fewest remaining
// values first, ties broken by most empty peers, remaining ties by lowest
// row then lowest column. It is a pure, deterministic function of the
// grid state; the move trace depends on that.
//
// ok is false once no empty cell remains. A returned cell may have an
// empty domain — the caller treats that as a dead end. Returning the
// first such cell immediately is sound (zero is the minimum domain size)
// and prunes over-constrained boards without scanning the rest.
func selectNext(g *grid) (cell domain.CellCoord, mask uint16, size, deg int, ok bool) {
	bestSize, bestDeg := 0, 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !g.isEmpty(r, c) {
				continue
			}
			m := g.domainMask(r, c)
			n := bits.OnesCount16(m)
			if n == 0 {
				return domain.CellCoord{Row: r, Col: c}, 0, 0, g.degree(r, c), true
			}
			if ok && n > bestSize {
				continue
			}
			d := g.degree(r, c)
			if ok && n == bestSize && d <= bestDeg {
				continue // row-major scan order settles exact ties
			}
			cell, mask, size, deg = domain.CellCoord{Row: r, Col: c}, m, n, d
			bestSize, bestDeg, ok = n, d, true
		}
	}
	return
}

package solver

import "svw.info/sudoku-cli/internal/domain"

// maxTrace bounds the decision log: only the first four assignments of
// the whole search are kept, chronologically, including ones later
// undone by backtracking.
const maxTrace = 4

type traceRecorder struct {
	moves []domain.Move
}

func newTraceRecorder() *traceRecorder {
	return &traceRecorder{moves: make([]domain.Move, 0, maxTrace)}
}

// record appends one decision while the log is below capacity; further
// calls are no-ops. Entries are never retracted.
func (t *traceRecorder) record(cell domain.CellCoord, domainSize, degree int, v uint8) {
	if len(t.moves) >= maxTrace {
		return
	}
	t.moves = append(t.moves, domain.Move{
		Index:      len(t.moves),
		Cell:       cell,
		DomainSize: domainSize,
		Degree:     degree,
		Value:      v,
	})
}

func (t *traceRecorder) snapshot() []domain.Move {
	out := make([]domain.Move, len(t.moves))
	copy(out, t.moves)
	return out
}

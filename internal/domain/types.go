package domain

// Board holds current cell values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move records one search decision: which cell was branched on, how
// constrained it was at selection time, and the value tried. Moves are
// immutable; entries undone by backtracking stay in the trace.
type Move struct {
	Index      int       `json:"index"`
	Cell       CellCoord `json:"cell"`
	DomainSize int       `json:"domainSize"`
	Degree     int       `json:"degree"`
	Value      uint8     `json:"value"`
}

// SolveResult is everything one solve invocation produces: the outcome
// tag, the final board (complete only when solved), and the trace of the
// first decisions attempted.
type SolveResult struct {
	Outcome Outcome `json:"outcome"`
	Board   Board   `json:"board"`
	Trace   []Move  `json:"trace,omitempty"`
}

// Puzzle is a generated Sudoku with metadata.
type Puzzle struct {
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Report is a persisted solve run with its provenance.
type Report struct {
	ID         string      `json:"id"`
	Source     string      `json:"source,omitempty"`
	Puzzle     Board       `json:"puzzle"`
	Result     SolveResult `json:"result"`
	Nodes      int         `json:"nodes,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	CreatedAt  int64       `json:"createdAt,omitempty"`
}

// ReportMeta is a lightweight listing entry.
type ReportMeta struct {
	ID        string  `json:"id"`
	Source    string  `json:"source,omitempty"`
	Outcome   Outcome `json:"outcome"`
	CreatedAt int64   `json:"createdAt"`
}

package domain

// Outcome tags the result of one solve invocation.
type Outcome int

const (
	Solved Outcome = iota
	Unsolvable
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case TimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

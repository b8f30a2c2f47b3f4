// Package render formats boards, traces, and outcomes for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

var (
	givenStyle  = lipgloss.NewStyle().Bold(true)
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Board renders the grid with box separators. Givens are bold, values
// filled in by the search are colored, empty cells show as dots.
func Board(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			v := b.Values[r][c]
			switch {
			case v == 0:
				sb.WriteString(emptyStyle.Render("."))
			case b.Fixed[r][c]:
				sb.WriteString(givenStyle.Render(string('0' + rune(v))))
			default:
				sb.WriteString(solvedStyle.Render(string('0' + rune(v))))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Trace renders the recorded first decisions, one line each.
func Trace(moves []domain.Move) string {
	if len(moves) == 0 {
		return "no assignments recorded\n"
	}
	var sb strings.Builder
	sb.WriteString("first assignments:\n")
	for _, m := range moves {
		fmt.Fprintf(&sb, "  %d) cell=(%d,%d) domain=%d degree=%d value=%d\n",
			m.Index+1, m.Cell.Row, m.Cell.Col, m.DomainSize, m.Degree, m.Value)
	}
	return sb.String()
}

// Outcome renders the one-line result banner.
func Outcome(o domain.Outcome, st ports.Stats) string {
	style := okStyle
	if o != domain.Solved {
		style = failStyle
	}
	return fmt.Sprintf("%s  (nodes=%d, took %v)",
		style.Render(strings.ToUpper(o.String())), st.Nodes, st.Duration.Round(time.Millisecond))
}

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"svw.info/numbermatch/internal/domain"
)

const timeUnit = time.Millisecond

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	phaseStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	extendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	tileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	clearStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderBoard draws the board with dim dots for cleared cells.
func renderBoard(b domain.Board) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < domain.RowSize; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch v := b[domain.Index(r, c)]; {
			case v > 0:
				sb.WriteString(tileStyle.Render(fmt.Sprintf("%d", v)))
			case v == domain.Cleared:
				sb.WriteString(clearStyle.Render("."))
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// printSteps lists each display step with its moves; the row-removing
// move, when present, is called out.
func printSteps(w io.Writer, steps []domain.Step) {
	for i, st := range steps {
		n := len(st.Moves)
		plural := ""
		if n != 1 {
			plural = "s"
		}
		fmt.Fprintf(w, "  Step %d: %d move%s\n", i+1, n, plural)
		for k, m := range st.Moves {
			line := fmt.Sprintf("    %s", domain.FormatMove(st.Board, m))
			if k == st.RowRemoval {
				line += " " + removeStyle.Render("(removes row)")
			}
			fmt.Fprintln(w, line)
		}
	}
}

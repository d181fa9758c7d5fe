package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/psychtest/psyquiz/internal/scoring"
	"github.com/psychtest/psyquiz/internal/ui/theme"
)

// LikertRow renders the four mutually exclusive choices of one question.
type LikertRow struct {
	// Selected is the chosen value, or nil when the question is unanswered.
	Selected *scoring.Value

	// Highlight is the index into scoring.Choices under the cursor.
	// Only drawn when Focused is true.
	Highlight int

	// Focused marks the row that owns the keyboard cursor.
	Focused bool

	// Locked rows ignore the cursor (result is shown).
	Locked bool
}

// View renders the row on a single line when it fits width, otherwise
// one choice per line.
func (r LikertRow) View(width int) string {
	cells := make([]string, len(scoring.Choices))
	for i, c := range scoring.Choices {
		mark := "( )"
		if r.Selected != nil && *r.Selected == c.Value {
			mark = "(•)"
		}
		cell := fmt.Sprintf("%s %d %s", mark, c.Value, c.Label)

		switch {
		case r.Focused && !r.Locked && i == r.Highlight:
			cell = theme.ChoiceHighlighted.Render("▸ " + cell)
		case r.Selected != nil && *r.Selected == c.Value:
			cell = theme.ChoiceSelected.Render("  " + cell)
		default:
			cell = theme.ChoiceIdle.Render("  " + cell)
		}
		cells[i] = cell
	}

	line := strings.Join(cells, " ")
	if lipgloss.Width(line) <= width {
		return line
	}
	return strings.Join(cells, "\n")
}

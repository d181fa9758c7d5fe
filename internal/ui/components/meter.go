package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/psychtest/psyquiz/internal/ui/theme"
)

// AnswerMeter is a horizontal bar showing how many questions are answered.
type AnswerMeter struct {
	Answered int
	Total    int
	Width    int
}

// NewAnswerMeter creates a meter for answered out of total.
func NewAnswerMeter(answered, total, width int) AnswerMeter {
	return AnswerMeter{Answered: answered, Total: total, Width: width}
}

// View renders the meter followed by an "n/m" counter.
func (m AnswerMeter) View() string {
	counter := fmt.Sprintf("  %d/%d", m.Answered, m.Total)

	barWidth := m.Width - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if m.Total > 0 {
		filled = barWidth * m.Answered / m.Total
	}
	filled = max(0, min(filled, barWidth))

	return theme.MeterFilled.Render(strings.Repeat(" ", filled)) +
		theme.MeterEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}

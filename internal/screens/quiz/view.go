package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/psychtest/psyquiz/internal/quiz"
	"github.com/psychtest/psyquiz/internal/scoring"
	"github.com/psychtest/psyquiz/internal/ui/components"
	"github.com/psychtest/psyquiz/internal/ui/theme"
)

// View renders the form inside a viewport sized to the content area.
func (s *QuizScreen) View(width, height int) string {
	content, spans := s.renderContent(width)
	lines := lipgloss.Height(content)

	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)
	s.viewport.SetContent(content)

	switch {
	case s.scrollToResult:
		s.offset = lines - height
		s.scrollToResult = false
		s.scrollToCursor = false
	case s.scrollToCursor && s.cursor < len(spans):
		span := spans[s.cursor]
		if span.top < s.offset {
			s.offset = span.top
		}
		if span.bottom >= s.offset+height {
			s.offset = span.bottom - height + 1
		}
		s.scrollToCursor = false
	}
	s.offset = max(0, min(s.offset, lines-height))
	s.viewport.SetYOffset(s.offset)

	return s.viewport.View()
}

// blockSpan is the inclusive line range of one question block.
type blockSpan struct {
	top, bottom int
}

func (s *QuizScreen) renderContent(width int) (string, []blockSpan) {
	inner := max(20, width-4)
	completed := s.session.State() == quiz.StateCompleted
	set := s.session.Set()

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Quick self-assessment (%d questions)", len(set))))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("For each statement pick how true it is for you."))
	b.WriteString("\n\n")

	line := lipgloss.Height(b.String()) - 1
	spans := make([]blockSpan, 0, len(set))
	for i, q := range set {
		block := s.renderBlock(i, q.Text, inner, completed)
		h := lipgloss.Height(block)
		spans = append(spans, blockSpan{top: line, bottom: line + h - 1})
		line += h
		b.WriteString(block)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderControls())
	b.WriteString("\n\n")
	b.WriteString(components.NewAnswerMeter(s.session.Answered(), s.session.Len(), min(inner, 50)).View())

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render(s.notice))
	}

	if res, ok := s.session.Result(); ok {
		b.WriteString("\n\n")
		b.WriteString(renderResult(res, inner))
	}

	return b.String(), spans
}

func (s *QuizScreen) renderBlock(i int, text string, width int, locked bool) string {
	focused := i == s.cursor && !locked

	row := components.LikertRow{
		Highlight: s.highlight,
		Focused:   focused,
		Locked:    locked,
	}
	if v, ok := s.session.Answer(i + 1); ok {
		row.Selected = &v
	}

	label := theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, text))
	body := label + "\n" + row.View(width-4)

	style := theme.BlurredCard
	if focused {
		style = theme.FocusedCard
	}
	return style.Width(width).Render(body)
}

func (s *QuizScreen) renderControls() string {
	state := s.session.State()
	submit := components.NewButton("s", "Submit", state.CanSubmit())
	reset := components.NewButton("r", "Reset", true)
	redraw := components.NewButton("n", "New questions", true)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		submit.View(), "  ", reset.View(), "  ", redraw.View(),
	)
}

func renderResult(res scoring.Result, width int) string {
	score := lipgloss.NewStyle().
		Foreground(bandColor(res.Band)).
		Bold(true).
		Render(res.ScoreLine())

	advice := theme.Body.Width(max(10, width-6)).Render(res.Advice)

	return theme.Card.
		BorderForeground(bandColor(res.Band)).
		Width(width).
		Render(score + "\n\n" + advice)
}

func bandColor(b scoring.Band) color.Color {
	switch b {
	case scoring.BandLow:
		return theme.Success
	case scoring.BandMedium:
		return theme.Accent
	default:
		return theme.Error
	}
}

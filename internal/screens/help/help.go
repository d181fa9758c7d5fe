package help

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/psychtest/psyquiz/internal/router"
	"github.com/psychtest/psyquiz/internal/screen"
	"github.com/psychtest/psyquiz/internal/scoring"
	"github.com/psychtest/psyquiz/internal/ui/layout"
	"github.com/psychtest/psyquiz/internal/ui/theme"
)

// HelpScreen lists the key bindings, the answer scale and the bands.
type HelpScreen struct {
	bindings []key.Binding
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen for the given bindings.
func New(bindings []key.Binding) *HelpScreen {
	return &HelpScreen{bindings: bindings}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "?", "q", "esc":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, kb := range h.bindings {
		hp := kb.Help()
		b.WriteString(keyStyle.Render(hp.Key) + descStyle.Render(hp.Desc) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Answers"))
	b.WriteString("\n\n")
	for _, c := range scoring.Choices {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%d", c.Value)) + descStyle.Render(c.Label) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Result bands"))
	b.WriteString("\n\n")
	bands := []struct {
		band scoring.Band
		span string
	}{
		{scoring.BandLow, fmt.Sprintf("up to %.0f%% of the maximum", scoring.LowCeiling*100)},
		{scoring.BandMedium, fmt.Sprintf("up to %.0f%% of the maximum", scoring.MediumCeiling*100)},
		{scoring.BandHigh, fmt.Sprintf("above %.0f%% of the maximum", scoring.MediumCeiling*100)},
	}
	for _, row := range bands {
		b.WriteString(keyStyle.Render(row.band.String()) + descStyle.Render(row.span) + "\n")
	}

	return theme.Card.
		Width(min(width, 64)).
		MaxHeight(height).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

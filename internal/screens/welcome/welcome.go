package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/psychtest/psyquiz/internal/router"
	"github.com/psychtest/psyquiz/internal/screen"
	"github.com/psychtest/psyquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealAt     = 800 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// breathFrames is a slow in-and-out cue shown above the banner.
var breathFrames = []string{
	"·",
	"· ·",
	"· · ·",
	"· · · ·",
	"· · · · ·",
	"· · · ·",
	"· · ·",
	"· ·",
}

type tickMsg time.Time

// WelcomeScreen is the intro shown before the first question set. Any key
// replaces it with the screen produced by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	breath := breathFrames[(w.tickCount/3)%len(breathFrames)]
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(breath),
	}

	if w.elapsed >= revealAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("How have you been feeling lately?"),
			theme.Hint.Render("A short self-check. It is not a diagnosis."),
		)
	}

	sections = append(sections, "", theme.Hint.Render("press any key to start"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

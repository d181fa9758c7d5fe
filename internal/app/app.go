package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/psychtest/psyquiz/internal/quiz"
	"github.com/psychtest/psyquiz/internal/router"
	"github.com/psychtest/psyquiz/internal/screen"
	quizscreen "github.com/psychtest/psyquiz/internal/screens/quiz"
	"github.com/psychtest/psyquiz/internal/screens/welcome"
	"github.com/psychtest/psyquiz/internal/ui/layout"
)

// Options configures the TUI application.
type Options struct {
	Session *quiz.Session
	Logger  *slog.Logger

	// SkipIntro opens directly on the quiz.
	SkipIntro bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *slog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the intro, which hands
// over to the quiz screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	quizFactory := func() screen.Screen {
		return quizscreen.New(opts.Session)
	}
	var initial screen.Screen = welcome.New(quizFactory)
	if opts.SkipIntro {
		initial = quizFactory()
	}

	return AppModel{
		router: router.New(initial),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Debug("quit")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	answered, total := 0, 0
	if pp, ok := m.router.Root().(screen.ProgressProvider); ok {
		answered, total = pp.Progress()
	}
	header := layout.RenderHeader(title, answered, total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := layout.ContentHeight(header, footer, m.height)
	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

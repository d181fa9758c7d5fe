package quiz

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/psychtest/psyquiz/internal/quiz"
	"github.com/psychtest/psyquiz/internal/router"
	"github.com/psychtest/psyquiz/internal/screen"
	"github.com/psychtest/psyquiz/internal/screens/help"
	"github.com/psychtest/psyquiz/internal/scoring"
	"github.com/psychtest/psyquiz/internal/ui/layout"
)

// QuizScreen renders the current question set as a form and routes key
// presses to the session controller.
type QuizScreen struct {
	session  *quiz.Session
	keys     keyMap
	viewport viewport.Model

	// cursor is the 0-based position of the focused question block.
	cursor int
	// highlight is the index into scoring.Choices under the cursor.
	highlight int

	// offset is the first visible content line.
	offset         int
	scrollToCursor bool
	scrollToResult bool

	notice string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)

// New creates a QuizScreen bound to session.
func New(session *quiz.Session) *QuizScreen {
	return &QuizScreen{
		session:  session,
		keys:     defaultKeyMap(),
		viewport: viewport.New(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Self-assessment"
}

func (s *QuizScreen) Progress() (answered, total int) {
	return s.session.Answered(), s.session.Len()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.State() == quiz.StateCompleted {
		return []layout.KeyHint{
			{Key: "r", Description: "Reset"},
			{Key: "n", Description: "New questions"},
			{Key: "?", Description: "Help"},
			{Key: "q", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Question"},
		{Key: "0-3", Description: "Answer"},
	}
	if s.session.State().CanSubmit() {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Submit"})
	}
	return append(hints,
		layout.KeyHint{Key: "r", Description: "Reset"},
		layout.KeyHint{Key: "n", Description: "New questions"},
		layout.KeyHint{Key: "?", Description: "Help"},
	)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		return s.handleKey(kmsg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.moveCursor(-1)
	case key.Matches(msg, s.keys.Down):
		s.moveCursor(1)
	case key.Matches(msg, s.keys.Left):
		if s.highlight > 0 {
			s.highlight--
		}
	case key.Matches(msg, s.keys.Right):
		if s.highlight < len(scoring.Choices)-1 {
			s.highlight++
		}
	case key.Matches(msg, s.keys.Choose):
		s.answer(scoring.Choices[s.highlight].Value)
	case key.Matches(msg, s.keys.Value):
		s.answer(scoring.Value(msg.String()[0] - '0'))
	case key.Matches(msg, s.keys.Submit):
		s.submit()
	case key.Matches(msg, s.keys.Reset):
		s.dispatch(quiz.Event{Action: quiz.ActionReset})
		s.rewind()
	case key.Matches(msg, s.keys.Reshuffle):
		s.dispatch(quiz.Event{Action: quiz.ActionReshuffle})
		s.rewind()
	case key.Matches(msg, s.keys.Help):
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: help.New(Bindings())} }
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	}
	return s, nil
}

// answer records v for the focused question and advances to the next one.
func (s *QuizScreen) answer(v scoring.Value) {
	if err := s.dispatch(quiz.Event{Action: quiz.ActionAnswer, Position: s.cursor + 1, Value: v}); err != nil {
		return
	}
	s.highlight = choiceIndex(v)
	if s.cursor < s.session.Len()-1 {
		s.moveCursor(1)
	}
}

func (s *QuizScreen) submit() {
	if !s.session.State().CanSubmit() && s.session.State() != quiz.StateCompleted {
		left := s.session.Len() - s.session.Answered()
		s.notice = fmt.Sprintf("Answer every question to submit (%d left).", left)
		return
	}
	if err := s.dispatch(quiz.Event{Action: quiz.ActionSubmit}); err == nil {
		s.scrollToResult = true
	}
}

// dispatch forwards ev to the session and turns rejected transitions into
// a notice line.
func (s *QuizScreen) dispatch(ev quiz.Event) error {
	err := s.session.Dispatch(ev)
	switch {
	case err == nil:
		s.notice = ""
	case errors.Is(err, quiz.ErrCompleted):
		s.notice = "Result shown. Press r to reset or n for new questions."
	default:
		s.notice = err.Error()
	}
	return err
}

func (s *QuizScreen) moveCursor(delta int) {
	next := s.cursor + delta
	if next < 0 || next >= s.session.Len() {
		return
	}
	s.cursor = next
	s.highlight = 0
	if v, ok := s.session.Answer(s.cursor + 1); ok {
		s.highlight = choiceIndex(v)
	}
	s.scrollToCursor = true
}

// rewind returns the cursor and scroll position to the first question.
func (s *QuizScreen) rewind() {
	s.cursor = 0
	s.highlight = 0
	s.offset = 0
	s.scrollToCursor = false
	s.scrollToResult = false
}

func choiceIndex(v scoring.Value) int {
	for i, c := range scoring.Choices {
		if c.Value == v {
			return i
		}
	}
	return 0
}

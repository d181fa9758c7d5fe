package quiz

import (
	"errors"
	"fmt"

	"github.com/psychtest/psyquiz/internal/scoring"
)

// ErrUnknownAction is returned by Dispatch for an unregistered action.
var ErrUnknownAction = errors.New("unknown action")

// Action names a user interaction the session reacts to.
type Action string

const (
	ActionAnswer    Action = "answer"
	ActionSubmit    Action = "submit"
	ActionReset     Action = "reset"
	ActionReshuffle Action = "reshuffle"
)

// Event is a single user interaction. Position and Value are only read
// for ActionAnswer.
type Event struct {
	Action   Action
	Position int
	Value    scoring.Value
}

var dispatchTable = map[Action]func(*Session, Event) error{
	ActionAnswer: func(s *Session, ev Event) error {
		return s.Select(ev.Position, ev.Value)
	},
	ActionSubmit: func(s *Session, _ Event) error {
		_, err := s.Submit()
		return err
	},
	ActionReset: func(s *Session, _ Event) error {
		s.Reset()
		return nil
	},
	ActionReshuffle: func(s *Session, _ Event) error {
		s.Reshuffle()
		return nil
	},
}

// Dispatch routes ev to the matching transition.
func (s *Session) Dispatch(ev Event) error {
	h, ok := dispatchTable[ev.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
	return h(s, ev)
}

package quiz

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/psychtest/psyquiz/internal/config"
	"github.com/psychtest/psyquiz/internal/pool"
	"github.com/psychtest/psyquiz/internal/sampler"
	"github.com/psychtest/psyquiz/internal/scoring"
)

var (
	// ErrNotReady is returned by Submit while some position is unanswered.
	ErrNotReady = errors.New("not every question is answered")

	// ErrCompleted is returned when answers change after the result is shown.
	ErrCompleted = errors.New("result already shown; reset or reshuffle first")
)

// Options configures optional Session collaborators.
type Options struct {
	// Source drives the sampler. Nil uses the process-wide generator.
	Source sampler.Source

	// Logger receives draw and submit events. Nil discards them.
	Logger *slog.Logger
}

// Session owns the displayed question set, the answers and the result.
// It is not safe for concurrent use; all calls are expected to come from
// a single event loop.
type Session struct {
	sampler      *sampler.Sampler
	displayCount int
	logger       *slog.Logger

	drawID  string
	set     []pool.Question
	answers scoring.Answers
	result  *scoring.Result
	state   State
}

// New creates a session over p and performs the first draw.
func New(cfg config.Config, p *pool.Pool, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.Len() < cfg.DisplayCount {
		return nil, &config.ConfigurationError{
			Field:   "display count",
			Message: fmt.Sprintf("%d exceeds pool size %d", cfg.DisplayCount, p.Len()),
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		sampler:      sampler.New(p, opts.Source),
		displayCount: cfg.DisplayCount,
		logger:       logger,
	}
	s.Reshuffle()
	return s, nil
}

// Set returns the current question set in display order.
func (s *Session) Set() []pool.Question {
	out := make([]pool.Question, len(s.set))
	copy(out, s.set)
	return out
}

// Len returns the number of positions in the current question set.
func (s *Session) Len() int {
	return len(s.set)
}

// DrawID identifies the current question set in logs.
func (s *Session) DrawID() string {
	return s.drawID
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Answer returns the value selected at pos (1-based), if any.
func (s *Session) Answer(pos int) (scoring.Value, bool) {
	v, ok := s.answers[pos]
	return v, ok
}

// Answers returns a copy of the current answers.
func (s *Session) Answers() scoring.Answers {
	return s.answers.Clone()
}

// Answered returns the number of answered positions.
func (s *Session) Answered() int {
	return s.answers.Count(len(s.set))
}

// IsComplete reports whether every position has exactly one answer.
func (s *Session) IsComplete() bool {
	return s.answers.IsComplete(len(s.set))
}

// Result returns the last submitted result. ok is false until a submit
// succeeds and again after reset or reshuffle.
func (s *Session) Result() (res scoring.Result, ok bool) {
	if s.result == nil {
		return scoring.Result{}, false
	}
	return *s.result, true
}

// Select records value v for position pos, replacing any earlier choice.
func (s *Session) Select(pos int, v scoring.Value) error {
	if s.state == StateCompleted {
		return ErrCompleted
	}
	if pos < 1 || pos > len(s.set) {
		return &scoring.ValidationError{Position: pos, Message: "no question at this position"}
	}
	if !v.Valid() {
		return &scoring.ValidationError{Position: pos, Message: fmt.Sprintf("value %d is not a choice", v)}
	}

	s.answers[pos] = v
	s.refreshState()
	return nil
}

// Submit scores the current answers and shows the result.
func (s *Session) Submit() (scoring.Result, error) {
	switch s.state {
	case StateCompleted:
		return scoring.Result{}, ErrCompleted
	case StateReadyToSubmit:
	default:
		return scoring.Result{}, ErrNotReady
	}

	res, err := scoring.Score(s.set, s.answers)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("score answers: %w", err)
	}

	s.result = &res
	s.state = StateCompleted
	s.logger.Info("submit",
		"draw_id", s.drawID,
		"total", res.Total,
		"max", res.Max,
		"band", res.Band.String(),
	)
	return res, nil
}

// Reset clears the answers and hides the result, keeping the question set.
func (s *Session) Reset() {
	s.clear()
	s.logger.Info("reset", "draw_id", s.drawID)
}

// Reshuffle draws a new question set and clears everything.
func (s *Session) Reshuffle() {
	s.set = s.sampler.Draw(s.displayCount)
	s.drawID = uuid.NewString()
	s.clear()
	s.logger.Info("draw", "draw_id", s.drawID, "question_ids", questionIDs(s.set))
}

func (s *Session) clear() {
	s.answers = make(scoring.Answers, len(s.set))
	s.result = nil
	s.state = StateUnanswered
}

// refreshState re-evaluates the answered state after a selection change.
func (s *Session) refreshState() {
	switch answered := s.Answered(); {
	case answered == 0:
		s.state = StateUnanswered
	case answered == len(s.set):
		s.state = StateReadyToSubmit
	default:
		s.state = StatePartiallyAnswered
	}
}

func questionIDs(set []pool.Question) []int {
	ids := make([]int, len(set))
	for i, q := range set {
		ids[i] = q.ID
	}
	return ids
}

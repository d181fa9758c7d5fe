package pool

import (
	"fmt"

	"github.com/psychtest/psyquiz/internal/config"
)

// Question is a single pool entry. Questions are immutable once created.
type Question struct {
	// ID is unique and stable for the lifetime of the pool (1-based).
	ID int

	// Text is the prompt shown to the respondent.
	Text string
}

// placeholderFormat is the stock text for generated questions. Deployers
// replace it with a question bank.
const placeholderFormat = "Question %d: placeholder question from the pool. Replace it with real question text."

// Generate returns size questions with ids 1..size in order.
func Generate(size int) []Question {
	qs := make([]Question, size)
	for i := range qs {
		qs[i] = Question{
			ID:   i + 1,
			Text: fmt.Sprintf(placeholderFormat, i+1),
		}
	}
	return qs
}

// Pool is the fixed, read-only collection of candidate questions.
type Pool struct {
	questions []Question
}

// New creates a pool of size placeholder questions.
func New(size int) *Pool {
	return &Pool{questions: Generate(size)}
}

// Build creates the pool described by cfg, applying the question bank
// when one is configured.
func Build(cfg config.Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := New(cfg.PoolSize)
	if cfg.BankPath == "" {
		return p, nil
	}

	bank, err := LoadBank(cfg.BankPath)
	if err != nil {
		return nil, &config.ConfigurationError{Field: "question bank", Err: err}
	}
	p, err = p.WithBank(bank)
	if err != nil {
		return nil, &config.ConfigurationError{Field: "question bank", Err: err}
	}
	return p, nil
}

// Len returns the number of questions in the pool.
func (p *Pool) Len() int {
	return len(p.questions)
}

// At returns the question at index i (0-based).
func (p *Pool) At(i int) Question {
	return p.questions[i]
}

// Questions returns a copy of the pool contents in order.
func (p *Pool) Questions() []Question {
	out := make([]Question, len(p.questions))
	copy(out, p.questions)
	return out
}

// WithBank returns a new pool whose question text is replaced by the
// bank entries with matching ids. Size and ordering never change.
func (p *Pool) WithBank(b *Bank) (*Pool, error) {
	qs := p.Questions()
	for _, e := range b.Questions {
		if e.ID < 1 || e.ID > len(qs) {
			return nil, fmt.Errorf("bank question id %d is outside pool range 1..%d", e.ID, len(qs))
		}
		qs[e.ID-1].Text = e.Text
	}
	return &Pool{questions: qs}, nil
}

package scoring

import (
	"fmt"

	"github.com/psychtest/psyquiz/internal/pool"
)

// Answers maps a 1-based position in the question set to the chosen value.
type Answers map[int]Value

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// IsComplete reports whether every position 1..n has a valid answer.
func (a Answers) IsComplete(n int) bool {
	return a.Missing(n) == 0
}

// Missing returns the first unanswered position in 1..n, or 0 when all
// positions are answered.
func (a Answers) Missing(n int) int {
	for pos := 1; pos <= n; pos++ {
		v, ok := a[pos]
		if !ok || !v.Valid() {
			return pos
		}
	}
	return 0
}

// Count returns how many positions in 1..n are answered.
func (a Answers) Count(n int) int {
	count := 0
	for pos := 1; pos <= n; pos++ {
		if v, ok := a[pos]; ok && v.Valid() {
			count++
		}
	}
	return count
}

// Result is the outcome of scoring one question set.
type Result struct {
	Total  int
	Max    int
	Band   Band
	Advice string
}

// Fraction returns Total/Max.
func (r Result) Fraction() float64 {
	if r.Max == 0 {
		return 0
	}
	return float64(r.Total) / float64(r.Max)
}

// ScoreLine renders "score: {total}/{max} ({band})".
func (r Result) ScoreLine() string {
	return fmt.Sprintf("score: %d/%d (%s)", r.Total, r.Max, r.Band)
}

// Score sums the selected values for set and classifies the total.
// It fails with a *ValidationError rather than treating a missing answer
// as zero.
func Score(set []pool.Question, answers Answers) (Result, error) {
	n := len(set)
	if n == 0 {
		return Result{}, &ValidationError{Message: "empty question set"}
	}

	total := 0
	for pos := 1; pos <= n; pos++ {
		v, ok := answers[pos]
		if !ok {
			return Result{}, &ValidationError{Position: pos, Message: "unanswered"}
		}
		if !v.Valid() {
			return Result{}, &ValidationError{Position: pos, Message: fmt.Sprintf("value %d is not a choice", v)}
		}
		total += int(v)
	}
	for pos := range answers {
		if pos < 1 || pos > n {
			return Result{}, &ValidationError{Position: pos, Message: "no question at this position"}
		}
	}

	maxScore := int(MaxValue) * n
	band := Classify(total, maxScore)
	return Result{
		Total:  total,
		Max:    maxScore,
		Band:   band,
		Advice: band.Advice(),
	}, nil
}

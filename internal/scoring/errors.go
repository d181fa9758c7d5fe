package scoring

import "fmt"

// ValidationError indicates the scorer was invoked with an answer set that
// does not cover the question set exactly.
type ValidationError struct {
	Position int // 1-based position at fault, 0 if not position-specific
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("invalid answers: %s", e.Message)
	}
	return fmt.Sprintf("invalid answer at position %d: %s", e.Position, e.Message)
}

package quiz

// State is the position of a session in the answer/submit lifecycle.
type State int

const (
	StateUnanswered        State = iota // Fresh draw, reset or reshuffle
	StatePartiallyAnswered              // Some positions answered
	StateReadyToSubmit                  // Every position answered
	StateCompleted                      // Result shown
)

func (s State) String() string {
	switch s {
	case StateUnanswered:
		return "unanswered"
	case StatePartiallyAnswered:
		return "partially-answered"
	case StateReadyToSubmit:
		return "ready-to-submit"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// CanSubmit reports whether the submit control is enabled in this state.
func (s State) CanSubmit() bool {
	return s == StateReadyToSubmit
}

package scoring

// Band is the qualitative severity classification of a score.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// Classification thresholds on the score fraction. Both are inclusive
// upper bounds: a fraction equal to LowCeiling is still Low.
const (
	LowCeiling    = 0.33
	MediumCeiling = 0.66
)

// String returns the band name used in the score line.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "Low"
	case BandMedium:
		return "Medium"
	case BandHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Advice returns the fixed advice text for the band.
func (b Band) Advice() string {
	switch b {
	case BandLow:
		return "Your answers are generally steady; your current stress or anxiety level is low."
	case BandMedium:
		return "Your answers show some stress or anxiety. Make time to relax and rest."
	case BandHigh:
		return "Your stress or anxiety level is high. Consider reaching out for professional help."
	default:
		return ""
	}
}

// Classify maps a total out of maxScore to a band.
func Classify(total, maxScore int) Band {
	pct := float64(total) / float64(maxScore)
	switch {
	case pct <= LowCeiling:
		return BandLow
	case pct <= MediumCeiling:
		return BandMedium
	default:
		return BandHigh
	}
}

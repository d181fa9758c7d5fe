package scoring

import (
	"errors"
	"testing"

	"github.com/psychtest/psyquiz/internal/pool"
)

// answersSumming builds n answers whose values add up to total,
// filling from the first position with the maximum value.
func answersSumming(n, total int) Answers {
	a := make(Answers, n)
	for pos := 1; pos <= n; pos++ {
		v := total
		if v > int(MaxValue) {
			v = int(MaxValue)
		}
		a[pos] = Value(v)
		total -= v
	}
	return a
}

func TestScore_Boundaries(t *testing.T) {
	tests := []struct {
		n     int
		total int
		want  Band
	}{
		{5, 0, BandLow},
		{5, 4, BandLow},
		{5, 5, BandMedium}, // 0.333... > 0.33
		{5, 9, BandMedium},
		{5, 10, BandHigh}, // 0.666... > 0.66
		{5, 15, BandHigh},
		{10, 0, BandLow},
		{10, 9, BandLow},
		{10, 10, BandMedium},
		{10, 15, BandMedium},
		{10, 19, BandMedium},
		{10, 20, BandHigh},
		{10, 30, BandHigh},
	}

	for _, tt := range tests {
		set := pool.Generate(tt.n)
		res, err := Score(set, answersSumming(tt.n, tt.total))
		if err != nil {
			t.Fatalf("n=%d total=%d: unexpected error: %v", tt.n, tt.total, err)
		}
		if res.Total != tt.total {
			t.Errorf("n=%d: Total = %d, want %d", tt.n, res.Total, tt.total)
		}
		if res.Max != 3*tt.n {
			t.Errorf("n=%d: Max = %d, want %d", tt.n, res.Max, 3*tt.n)
		}
		if res.Band != tt.want {
			t.Errorf("n=%d total=%d: Band = %s, want %s", tt.n, tt.total, res.Band, tt.want)
		}
		if res.Advice != tt.want.Advice() {
			t.Errorf("n=%d total=%d: advice does not match band", tt.n, tt.total)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	set := pool.Generate(5)
	answers := Answers{1: 3, 2: 0, 3: 2, 4: 1, 5: 3}

	first, err := Score(set, answers)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Score(set, answers.Clone())
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("run %d: %+v != %+v", i, again, first)
		}
	}
}

func TestScore_Incomplete(t *testing.T) {
	set := pool.Generate(5)
	_, err := Score(set, Answers{1: 3, 2: 3, 4: 3, 5: 3})

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if valErr.Position != 3 {
		t.Errorf("Position = %d, want 3", valErr.Position)
	}
}

func TestScore_InvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		set     []pool.Question
		answers Answers
	}{
		{"empty set", nil, Answers{}},
		{"value out of range", pool.Generate(2), Answers{1: 3, 2: 4}},
		{"negative value", pool.Generate(2), Answers{1: -1, 2: 0}},
		{"extra position", pool.Generate(2), Answers{1: 1, 2: 1, 3: 1}},
		{"no answers", pool.Generate(2), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(tt.set, tt.answers)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestResult_ScoreLine(t *testing.T) {
	res, err := Score(pool.Generate(10), answersSumming(10, 15))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.ScoreLine(), "score: 15/30 (Medium)"; got != want {
		t.Errorf("ScoreLine = %q, want %q", got, want)
	}
	if res.Fraction() != 0.5 {
		t.Errorf("Fraction = %v, want 0.5", res.Fraction())
	}
}

func TestAnswers_Completeness(t *testing.T) {
	a := Answers{}
	if a.IsComplete(3) {
		t.Error("empty answers should not be complete")
	}
	if a.Missing(3) != 1 {
		t.Errorf("Missing = %d, want 1", a.Missing(3))
	}

	a[1] = 0
	a[3] = 2
	if a.IsComplete(3) {
		t.Error("answers missing position 2 should not be complete")
	}
	if a.Count(3) != 2 {
		t.Errorf("Count = %d, want 2", a.Count(3))
	}

	a[2] = 1
	if !a.IsComplete(3) {
		t.Error("all positions answered should be complete")
	}

	// Replacing a selection keeps exactly one answer per position.
	a[2] = 3
	if a.Count(3) != 3 || a[2] != 3 {
		t.Errorf("replacement failed: %v", a)
	}
}

func TestValueLabels(t *testing.T) {
	want := map[Value]string{3: "very true", 2: "somewhat true", 1: "slightly true", 0: "not true"}
	for v, label := range want {
		if v.Label() != label {
			t.Errorf("Value(%d).Label() = %q, want %q", v, v.Label(), label)
		}
	}
	if Value(4).Valid() || Value(4).Label() != "" {
		t.Error("value 4 should not be a choice")
	}
	if len(Choices) != 4 {
		t.Errorf("len(Choices) = %d, want 4", len(Choices))
	}
}

func TestBandString(t *testing.T) {
	if BandLow.String() != "Low" || BandMedium.String() != "Medium" || BandHigh.String() != "High" {
		t.Error("unexpected band names")
	}
}

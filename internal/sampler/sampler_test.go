package sampler

import (
	"testing"

	"github.com/psychtest/psyquiz/internal/pool"
)

// countingSource records how many draws were made and delegates to inner.
type countingSource struct {
	inner Source
	calls int
	bound []int
}

func (c *countingSource) IntN(n int) int {
	c.calls++
	c.bound = append(c.bound, n)
	return c.inner.IntN(n)
}

// fixedSource always returns zero, i.e. swaps each position with index 0.
type fixedSource struct{}

func (fixedSource) IntN(int) int { return 0 }

func TestPickRandomN_DistinctFromPool(t *testing.T) {
	sizes := []struct{ pool, n int }{
		{1, 1}, {2, 1}, {5, 5}, {10, 3}, {200, 5}, {200, 10}, {200, 40}, {1000, 7},
	}

	for _, sz := range sizes {
		qs := pool.Generate(sz.pool)
		for seed := uint64(0); seed < 50; seed++ {
			got := PickRandomN(qs, sz.n, Seeded(seed))
			if len(got) != sz.n {
				t.Fatalf("pool=%d n=%d: got %d questions", sz.pool, sz.n, len(got))
			}
			seen := make(map[int]bool)
			for _, q := range got {
				if q.ID < 1 || q.ID > sz.pool {
					t.Fatalf("pool=%d n=%d: id %d not in pool", sz.pool, sz.n, q.ID)
				}
				if seen[q.ID] {
					t.Fatalf("pool=%d n=%d: duplicate id %d", sz.pool, sz.n, q.ID)
				}
				if qs[q.ID-1] != q {
					t.Fatalf("question %d does not match pool entry", q.ID)
				}
				seen[q.ID] = true
			}
		}
	}
}

func TestPickRandomN_EarlyStop(t *testing.T) {
	tests := []struct {
		name      string
		pool, n   int
		wantCalls int
	}{
		// Stops once more than n*5 positions have been swapped.
		{"large pool", 200, 5, 26},
		{"large pool n=10", 200, 10, 51},
		// Small pool: the full shuffle finishes first.
		{"small pool", 10, 5, 9},
		{"single", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &countingSource{inner: Seeded(1)}
			PickRandomN(pool.Generate(tt.pool), tt.n, src)
			if src.calls != tt.wantCalls {
				t.Errorf("draws = %d, want %d", src.calls, tt.wantCalls)
			}
			// Each draw is over [0, i] for i from the last index down.
			for k, b := range src.bound {
				if want := tt.pool - k; b != want {
					t.Fatalf("draw %d bound = %d, want %d", k, b, want)
				}
			}
		})
	}
}

func TestPickRandomN_FixedSource(t *testing.T) {
	// With j always 0, position i swaps with the front:
	// indices [0 1 2 3 4] -> i=4: [4 1 2 3 0] -> i=3: [3 1 2 4 0]
	// -> i=2: [2 1 3 4 0] -> i=1: [1 2 3 4 0].
	got := PickRandomN(pool.Generate(5), 2, fixedSource{})
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("got ids %v, want [2 3]", ids(got))
	}
}

func TestPickRandomN_Deterministic(t *testing.T) {
	qs := pool.Generate(200)
	a := PickRandomN(qs, 5, Seeded(42))
	b := PickRandomN(qs, 5, Seeded(42))
	if len(a) != len(b) {
		t.Fatal("length mismatch")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs: %d vs %d", i, a[i].ID, b[i].ID)
		}
	}
}

func TestPickRandomN_NExceedsPool(t *testing.T) {
	got := PickRandomN(pool.Generate(3), 5, Seeded(7))
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
}

func TestSampler_Draw(t *testing.T) {
	s := New(pool.New(200), Seeded(3))
	set := s.Draw(5)
	if len(set) != 5 {
		t.Fatalf("Draw returned %d questions", len(set))
	}

	s = New(pool.New(20), nil)
	if got := s.Draw(20); len(got) != 20 {
		t.Fatalf("Draw with default source returned %d", len(got))
	}
}

func ids(qs []pool.Question) []int {
	out := make([]int, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

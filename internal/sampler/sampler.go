package sampler

import (
	"math/rand/v2"

	"github.com/psychtest/psyquiz/internal/pool"
)

// ShuffleFactor bounds the partial shuffle: only the tail n*ShuffleFactor
// (+1) positions of the index sequence are ever swapped.
const ShuffleFactor = 5

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default returns a Source backed by the process-wide generator.
func Default() Source {
	return globalSource{}
}

// Seeded returns a deterministic Source for reproducible draws.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickRandomN returns n distinct questions from qs in randomized order.
//
// The shuffle is a Fisher-Yates pass from the back of the index sequence
// that stops early: it continues only while the number of positions
// already swapped from the end is at most n*ShuffleFactor. The first n
// indices are then mapped back to questions. Over large pools this favors
// the tail positions; callers rely on that exact behavior.
//
// If n exceeds len(qs) fewer than n questions are returned.
func PickRandomN(qs []pool.Question, n int, rng Source) []pool.Question {
	size := len(qs)
	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}

	for i := size - 1; i > 0 && size-1-i <= n*ShuffleFactor; i-- {
		j := rng.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	if n > size {
		n = size
	}
	if n < 0 {
		n = 0
	}

	out := make([]pool.Question, 0, n)
	for _, idx := range indices[:n] {
		out = append(out, qs[idx])
	}
	return out
}

// Sampler draws question sets from a fixed pool.
type Sampler struct {
	pool *pool.Pool
	rng  Source
}

// New creates a Sampler over p. A nil rng uses Default().
func New(p *pool.Pool, rng Source) *Sampler {
	if rng == nil {
		rng = Default()
	}
	return &Sampler{pool: p, rng: rng}
}

// Draw returns a fresh question set of n questions.
func (s *Sampler) Draw(n int) []pool.Question {
	return PickRandomN(s.pool.Questions(), n, s.rng)
}

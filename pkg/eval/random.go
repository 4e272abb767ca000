package eval

import (
	"context"
	"math/rand"

	"github.com/ashgrove/vantage/pkg/board"
)

// Random is a small evaluation-noise generator: it contributes a uniformly distributed
// millipawn nudge to a score. The zero value disables noise.
type Random struct {
	rand  *rand.Rand
	limit int // millipawns
}

// NewRandom returns a Random generator bounded by +/- limit/2 millipawns, seeded by seed.
// A non-positive limit disables noise.
func NewRandom(limit int, seed int64) Random {
	return Random{rand: rand.New(rand.NewSource(seed)), limit: limit}
}

// Evaluate returns the noise contribution for the given position. It does not evaluate the
// position itself; callers add it to a base Evaluator's score.
func (n Random) Evaluate(ctx context.Context, b *board.Board) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit)-n.limit/2) / 10
}

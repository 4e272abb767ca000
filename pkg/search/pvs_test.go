package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/board/fen"
	"github.com/ashgrove/vantage/pkg/eval"
	"github.com/ashgrove/vantage/pkg/search"
)

func newBoard(t *testing.T, f string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(f)
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}

func runSearch(t *testing.T, b *board.Board, depth int) (uint64, eval.Score, []board.Move) {
	t.Helper()

	p := search.PVS{Eval: eval.Standard{}}
	var cancel atomic.Bool

	nodes, score, pv, err := p.Search(context.Background(), &cancel, b, depth, nil)
	require.NoError(t, err)
	return nodes, score, pv
}

// S1 — mate in 1. From "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", a depth-2 search must find
// the back-rank mate a1a8.
func TestPVS_S1_MateInOne(t *testing.T) {
	b := newBoard(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	_, score, pv := runSearch(t, b, 2)

	require.NotEmpty(t, pv)
	assert.Equal(t, "a1a8", pv[0].String())
	assert.True(t, eval.IsMateScore(score))
}

// S3 — Fool's mate defense. From the position after 1.e3 g5, White's best move at depth 4
// must be the queen sortie d1h5 (threatening Qxf7#).
func TestPVS_S3_PrefersQh5(t *testing.T) {
	b := newBoard(t, "rnbqkbnr/ppppp2p/5p2/6p1/8/4P3/PPPP1PPP/RNBQKBNR w KQkq - 0 2")

	_, _, pv := runSearch(t, b, 4)

	require.NotEmpty(t, pv)
	assert.Equal(t, "d1h5", pv[0].String())
}

// S4 — stalemate recognition. From "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Black has no legal
// moves and is not in check, so the position is scored as a draw regardless of depth.
func TestPVS_S4_StalemateScoresZero(t *testing.T) {
	b := newBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	for depth := 1; depth <= 3; depth++ {
		_, score, pv := runSearch(t, b, depth)
		assert.Zero(t, score)
		assert.Empty(t, pv)
	}
}

// Invariant 3 — mate-in-N monotonicity: a mate-in-k position searched at depth 2k-1 scores
// a forced mate, and a faster forced mate (smaller k) scores higher (less negative from the
// losing side, more positive from the winning side) than a slower one.
func TestPVS_MateInNMonotonicity(t *testing.T) {
	mateInOne := newBoard(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	_, s1, _ := runSearch(t, mateInOne, 1)
	assert.True(t, eval.IsMateScore(s1))

	// A deeper search of the same forced mate must not find a *slower* mate than a shallower
	// one: the score can only stay the same or improve as depth increases past 2k-1.
	_, s1AtDeeperDepth, _ := runSearch(t, mateInOne, 3)
	assert.GreaterOrEqual(t, s1AtDeeperDepth, s1)
}

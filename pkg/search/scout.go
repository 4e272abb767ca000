package search

import (
	"context"

	"github.com/ashgrove/vantage/pkg/board"
	"go.uber.org/atomic"

	"github.com/ashgrove/vantage/pkg/eval"
)

// scout performs a cheap null-window (zero-width) search used to probe whether a move is
// likely to beat beta before committing to a full-window re-search. It returns the node
// count and a fail-hard score: beta if some move refutes it, beta-1 (a "failed low") sentinel
// otherwise.
func scout(ctx context.Context, cancel *atomic.Bool, b *board.Board, qs Quiescence, beta eval.Score, depth int) (uint64, eval.Score) {
	if cancel.Load() {
		return 0, 0
	}
	if depth == 0 {
		return qs.Search(ctx, cancel, b, beta-1, beta)
	}

	moves := b.Position().PseudoLegalMoves(b.Turn())
	Order(moves, nil)

	var nodes uint64 = 1
	for _, m := range moves {
		if !b.PushMove(m) {
			continue
		}

		n, s := scout(ctx, cancel, b, qs, beta.Negate()+1, depth-1)
		b.PopMove()

		nodes += n
		if s.Negate() >= beta {
			return nodes, beta
		}
	}
	return nodes, beta - 1
}

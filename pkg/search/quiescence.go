package search

import (
	"context"

	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/eval"
	"go.uber.org/atomic"
)

// Quiescence is an alpha-beta search restricted to captures, used to resolve the horizon
// of the main search: it stops extending once a position is "quiet" (no profitable capture
// remains), avoiding the horizon effect of cutting off analysis mid-exchange.
type Quiescence struct {
	Eval eval.Evaluator
}

// Search returns the node count and the fail-hard score for the side to move, clamped to
// [alpha, beta].
func (q Quiescence) Search(ctx context.Context, cancel *atomic.Bool, b *board.Board, alpha, beta eval.Score) (uint64, eval.Score) {
	if cancel.Load() {
		return 0, 0
	}

	standPat := q.Eval.Evaluate(ctx, b)
	if standPat >= beta {
		return 1, beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := captureMoves(b.Position().PseudoLegalMoves(b.Turn()))
	Order(captures, nil)

	var nodes uint64 = 1
	for _, m := range captures {
		if !b.PushMove(m) {
			continue
		}

		n, s := q.Search(ctx, cancel, b, beta.Negate(), alpha.Negate())
		b.PopMove()

		nodes += n
		s = s.Negate()

		if s >= beta {
			return nodes, beta
		}
		if s > alpha {
			alpha = s
		}
	}
	return nodes, alpha
}

// captureMoves filters moves down to those that capture an enemy piece, including en passant.
func captureMoves(moves []board.Move) []board.Move {
	ret := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			ret = append(ret, m)
		}
	}
	return ret
}

package search

import (
	"context"

	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/eval"
	"go.uber.org/atomic"
)

// maxExtensions caps the cumulative number of search extensions granted along a single line,
// so that a string of checks or promotions can't blow up the search depth unboundedly.
const maxExtensions = 15

// castlingBias discourages castling on the principal variation: it is subtracted from the
// first (PV) move's score only, when that move castles, reproducing the original engine's
// asymmetric penalty rather than a symmetric evaluation term applied to both sides.
const castlingBias eval.Score = 80 // centipawns

// PVS implements principal variation search with null-window scout re-searches, check/queen-
// promotion extensions and quiescence at the horizon. Pseudo-code:
//
//	function pvs(node, depth, alpha, beta, color) is
//	    if depth = 0 or node is terminal then
//	        return color x quiescence(node, alpha, beta)
//	    for each child of node do
//	        if child is first child then
//	            score := -pvs(child, depth-1, -beta, -alpha, -color)
//	        else
//	            score := -scout(child, -alpha, depth-1)  (* null-window probe *)
//	            if score > alpha then
//	                score := -pvs(child, depth-1, -beta, -alpha, -color)  (* re-search *)
//	        alpha := max(alpha, score)
//	        if alpha >= beta then
//	            break  (* beta cutoff *)
//	    return alpha
//
// See: https://en.wikipedia.org/wiki/Principal_variation_search.
type PVS struct {
	Eval eval.Evaluator

	// DisableCastlingBias turns off the PV-branch castling nudge, for evaluation studies
	// that want a symmetric evaluator.
	DisableCastlingBias bool
}

// Search runs a fixed-depth PVS search from b's current position, consuming pvHint (the
// previous iteration's completed principal variation, if any) to seed move ordering.
func (p PVS) Search(ctx context.Context, cancel *atomic.Bool, b *board.Board, depth int, pvHint []board.Move) (uint64, eval.Score, []board.Move, error) {
	run := &runPVS{
		qs:                  Quiescence{Eval: p.Eval},
		cancel:              cancel,
		b:                   b,
		pvHint:              pvHint,
		disableCastlingBias: p.DisableCastlingBias,
	}

	score, pv := run.search(ctx, eval.NegInf, eval.Inf, depth, 0, 0)
	if cancel.Load() {
		return 0, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runPVS struct {
	qs     Quiescence
	cancel *atomic.Bool
	b      *board.Board
	nodes  uint64

	pvHint              []board.Move
	disableCastlingBias bool
}

// search returns the score for the side to move, and the line that achieves it.
func (r *runPVS) search(ctx context.Context, alpha, beta eval.Score, depth, ply, extensions int) (eval.Score, []board.Move) {
	if r.cancel.Load() {
		return 0, nil
	}
	if r.b.Result().Outcome == board.Draw {
		r.nodes++
		return 0, nil
	}
	if depth <= 0 {
		n, s := r.qs.Search(ctx, r.cancel, r.b, alpha, beta)
		r.nodes += n
		return s, nil
	}

	moves := r.b.Position().PseudoLegalMoves(r.b.Turn())
	Order(moves, &r.pvHint)
	r.nodes++

	var pv []board.Move
	hasLegalMove := false
	first := true

	for _, m := range moves {
		if !r.b.PushMove(m) {
			continue
		}
		hasLegalMove = true

		ext := r.extend(m, extensions)

		var s eval.Score
		var rem []board.Move
		if first {
			s, rem = r.search(ctx, beta.Negate(), alpha.Negate(), depth-1+ext, ply+1, extensions+ext)
			s = s.Negate()
			if !r.disableCastlingBias && isCastle(m) {
				s -= castlingBias
			}
			first = false
		} else {
			n, zs := scout(ctx, r.cancel, r.b, r.qs, alpha.Negate(), depth-1)
			r.nodes += n

			s = zs.Negate()
			if s > alpha {
				s, rem = r.search(ctx, beta.Negate(), alpha.Negate(), depth-1+ext, ply+1, extensions+ext)
				s = s.Negate()
			}
		}
		r.b.PopMove()

		if r.cancel.Load() {
			return 0, nil
		}

		if s >= beta {
			return beta, nil // fail-hard cutoff: out_line not updated
		}
		if s > alpha {
			alpha = s
			pv = append([]board.Move{m}, rem...)
		}
	}

	if !hasLegalMove {
		if result := r.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.MateIn(ply), nil
		}
		return 0, nil
	}

	return alpha, pv
}

// extend returns the number of plies to extend the search by for the move just made (the
// board has already been pushed), capped so a line can't extend indefinitely.
func (r *runPVS) extend(m board.Move, extensions int) int {
	if extensions >= maxExtensions {
		return 0
	}
	if r.b.Position().IsChecked(r.b.Turn()) {
		return 1
	}
	if m.Promotion == board.Queen {
		return 1
	}
	return 0
}

func isCastle(m board.Move) bool {
	return m.Type == board.KingSideCastle || m.Type == board.QueenSideCastle
}

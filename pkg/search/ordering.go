package search

import (
	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/eval"
)

// Order reorders moves in place: a PV hint move (if present and found in moves) is swapped
// to the front, then the remainder is partially sorted by a single O(n) sweep that keeps
// swapping the best-scoring-so-far candidate into the first unsorted slot. This deliberately
// does not produce a fully sorted list -- only the first unsorted move is the highest scoring
// one, with ties resolved in favor of the latest candidate seen. The running best starts at
// zero, so when every remaining move scores below zero none of them is moved.
//
// pvHint is consumed head-first: its first move is popped whether or not it is found in
// moves, so that the next (deeper) call in the same search sees the remaining suffix.
func Order(moves []board.Move, pvHint *[]board.Move) {
	start := 0
	if pvHint != nil && len(*pvHint) > 0 {
		hint := (*pvHint)[0]
		*pvHint = (*pvHint)[1:]

		for i, m := range moves {
			if m.Equals(hint) {
				moves[0], moves[i] = moves[i], moves[0]
				start = 1
				break
			}
		}
	}

	best := eval.Score(0)
	for i := start; i < len(moves); i++ {
		if s := moveOrderingScore(moves[i]); s >= best {
			best = s
			moves[start], moves[i] = moves[i], moves[start]
		}
	}
}

// moveOrderingScore is the MVV-LVA-like heuristic used to prioritize captures and queen
// promotions ahead of quiet moves: value(captured) - value(mover), with a queen promotion
// scored as an outright queen gain regardless of the underlying pawn's value.
func moveOrderingScore(m board.Move) eval.Score {
	if m.Promotion == board.Queen {
		return eval.NominalValue(board.Queen)
	}
	if m.IsCapture() {
		return eval.NominalValue(m.Capture) - eval.NominalValue(m.Piece)
	}
	return 0
}

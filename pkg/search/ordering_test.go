package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/search"
)

func move(from, to board.Square, typ board.MoveType, capture board.Piece) board.Move {
	return board.Move{From: from, To: to, Type: typ, Capture: capture}
}

// TestOrder_PVHintGoesFirst reproduces invariant 5: the PV hint move, if present in the
// list, is always swapped to the front, consumed head-first off the hint slice.
func TestOrder_PVHintGoesFirst(t *testing.T) {
	quiet1 := move(board.E2, board.E4, board.Push, board.NoPiece)
	quiet2 := move(board.D2, board.D4, board.Push, board.NoPiece)
	pvMove := move(board.G1, board.F3, board.Normal, board.NoPiece)

	moves := []board.Move{quiet1, quiet2, pvMove}
	hint := []board.Move{pvMove, quiet1}

	search.Order(moves, &hint)

	assert.Equal(t, pvMove, moves[0])
	assert.Equal(t, []board.Move{quiet1}, hint, "hint is consumed head-first")
}

// TestOrder_CapturesOutrankQuietMoves checks the MVV-LVA-style scoring: a pawn capturing a
// queen outranks both a quiet move and a queen capturing a pawn (which scores below zero).
func TestOrder_CapturesOutrankQuietMoves(t *testing.T) {
	quiet := move(board.E2, board.E4, board.Push, board.NoPiece)
	pawnTakesQueen := board.Move{From: board.E4, To: board.D5, Type: board.Capture, Piece: board.Pawn, Capture: board.Queen}
	queenTakesPawn := board.Move{From: board.D1, To: board.D5, Type: board.Capture, Piece: board.Queen, Capture: board.Pawn}

	moves := []board.Move{quiet, queenTakesPawn, pawnTakesQueen}
	search.Order(moves, nil)

	assert.Equal(t, pawnTakesQueen, moves[0])
}

// TestOrder_QueenPromotionOverridesMVVLVA checks that a queen promotion scores as an
// outright queen gain, ahead of ordinary captures.
func TestOrder_QueenPromotionOverridesMVVLVA(t *testing.T) {
	rookTakesRook := board.Move{From: board.A7, To: board.A8, Type: board.Capture, Piece: board.Rook, Capture: board.Rook}
	promote := board.Move{From: board.B7, To: board.B8, Type: board.Promotion, Piece: board.Pawn, Promotion: board.Queen}

	moves := []board.Move{rookTakesRook, promote}
	search.Order(moves, nil)

	assert.Equal(t, promote, moves[0])
}

// TestOrder_Idempotent reproduces invariant 5: running the orderer twice in a row with the
// same PV hint yields the same first element both times, with the hint consumed once.
func TestOrder_Idempotent(t *testing.T) {
	pvMove := move(board.E2, board.E4, board.Push, board.NoPiece)
	other := move(board.D2, board.D4, board.Push, board.NoPiece)

	moves1 := []board.Move{other, pvMove}
	hint := []board.Move{pvMove}
	search.Order(moves1, &hint)
	first := moves1[0]

	moves2 := []board.Move{other, pvMove}
	search.Order(moves2, nil) // hint already consumed by the first call
	assert.Equal(t, first, moves2[0])
}

// TestOrder_TieBreakFavorsLaterCandidate pins down the "≥" tie-break specified for the
// single-pass partial sort: among equally scored captures, the later one in the input
// order wins the swap into the front slot.
func TestOrder_TieBreakFavorsLaterCandidate(t *testing.T) {
	first := board.Move{From: board.A2, To: board.A3, Type: board.Capture, Piece: board.Pawn, Capture: board.Pawn}
	second := board.Move{From: board.B2, To: board.B3, Type: board.Capture, Piece: board.Pawn, Capture: board.Pawn}

	moves := []board.Move{first, second}
	search.Order(moves, nil)

	assert.Equal(t, second, moves[0])
}

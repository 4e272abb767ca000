package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/board/fen"
)

// snapshot captures everything PushMove/PopMove is required to restore exactly.
type snapshot struct {
	hash       board.ZobristHash
	turn       board.Color
	noprogress int
	fullmoves  int
	pos        board.Position
}

func snap(t *testing.T, b *board.Board) snapshot {
	t.Helper()
	return snapshot{
		hash:       b.Hash(),
		turn:       b.Turn(),
		noprogress: b.NoProgress(),
		fullmoves:  b.FullMoves(),
		pos:        *b.Position(),
	}
}

// TestUndoCorrectness is spec invariant 1: for any sequence of legal PushMove calls on any
// legal position, popping the same number of moves yields a board identical to the starting
// one -- hash, piece placement, side to move, castling rights, en-passant square, halfmove
// clock and fullmove number all included (castling/en-passant are part of Position and hash,
// and the halfmove clock, turn and fullmoves are compared directly in the snapshot).
func TestUndoCorrectness(t *testing.T) {
	positions := []string{
		fen.Initial,
		"rnbqkbnr/ppppp2p/5p2/6p1/8/4P3/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", // castling rights on both sides
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"k7/3p3p/8/2p5/2P5/8/5P2/K7 w - - 0 1", // passed-pawn scenario (S6)
	}

	for _, start := range positions {
		t.Run(start, func(t *testing.T) {
			pos, turn, noprogress, fullmoves, err := fen.Decode(start)
			require.NoError(t, err)

			zt := board.NewZobristTable(7)
			b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

			before := snap(t, b)

			var played []board.Move
			for depth := 0; depth < 4; depth++ {
				moves := b.Position().PseudoLegalMoves(b.Turn())
				pushed := false
				for _, m := range moves {
					if b.PushMove(m) {
						played = append(played, m)
						pushed = true
						break
					}
				}
				if !pushed {
					break // no legal move available at this depth; stop descending
				}
			}
			require.NotEmpty(t, played, "expected at least one legal move from %v", start)

			for range played {
				_, ok := b.PopMove()
				require.True(t, ok)
			}

			after := snap(t, b)
			assert.Equal(t, before, after)
		})
	}
}

// TestPopMoveEmptyHistory confirms PopMove on a board with no history reports failure
// rather than panicking or silently returning a zero move.
func TestPopMoveEmptyHistory(t *testing.T) {
	pos, turn, noprogress, fullmoves, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

	_, ok := b.PopMove()
	assert.False(t, ok)
}

// TestPushMoveIllegalRejected confirms a move from an empty square is rejected without
// mutating the board.
func TestPushMoveIllegalRejected(t *testing.T) {
	pos, turn, noprogress, fullmoves, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)
	before := snap(t, b)

	bogus := board.Move{From: board.E4, To: board.E5, Type: board.Normal} // e4 is empty
	ok := b.PushMove(bogus)
	assert.False(t, ok)
	assert.Equal(t, before, snap(t, b))
}

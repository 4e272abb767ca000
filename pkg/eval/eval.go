// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/ashgrove/vantage/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in Score, from the perspective of the side to move.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material returns the nominal material advantage balance for the side to move. It is a
// cheap fallback evaluator, e.g. for perft-style node counting where accuracy doesn't matter.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	var pawns Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		diff := pos.PieceBitboard(turn, p).PopCount() - pos.PieceBitboard(turn.Opponent(), p).PopCount()
		pawns += Score(diff) * NominalValue(p)
	}
	return pawns
}

// Standard is the engine's primary evaluator: material plus piece-square placement,
// pawn-structure terms and an endgame-aware king activity term.
type Standard struct{}

func (Standard) Evaluate(ctx context.Context, b *board.Board) Score {
	return Evaluate(b.Position(), b.Turn())
}

// Evaluate returns the static score of pos from the perspective of turn: positive means
// turn stands better. Combines material, piece-square placement, pawn-structure terms
// (doubled/passed pawns) and an endgame-aware king activity term. The result is a raw
// centipawn sum, per Score's units.
func Evaluate(pos *board.Position, turn board.Color) Score {
	var centipawns int

	endgame := isEndgame(pos)
	whiteKing := pos.PieceBitboard(board.White, board.King).LastPopSquare()
	blackKing := pos.PieceBitboard(board.Black, board.King).LastPopSquare()

	for c := board.ZeroColor; c < board.NumColors; c++ {
		sign := 1
		if c == board.Black {
			sign = -1
		}

		for p := board.Pawn; p <= board.King; p++ {
			bb := pos.PieceBitboard(c, p)
			for bb != 0 {
				sq := bb.LastPopSquare()
				bb &= bb - 1

				idx := pstIndex(sq, c)
				var positional int
				switch p {
				case board.Pawn:
					positional = pawnTable[idx]
					if containsMultiplePawnsOnFile(pos, c, sq) {
						positional -= doubledPawnPenalty
					}
					if isPassedPawn(pos, c, sq) {
						positional += passedPawnReward
					}
				case board.Knight:
					positional = knightTable[idx]
				case board.Bishop:
					positional = bishopTable[idx]
				case board.Rook:
					positional = rookTable[idx]
				case board.Queen:
					positional = queenTable[idx]
				case board.King:
					if !endgame {
						positional = kingTable[idx]
					} else {
						enemyKing := whiteKing
						if c == board.White {
							enemyKing = blackKing
						}
						positional = kingEndgameTable[idx] + centerManhattanDistance[pstIndex(enemyKing, c)]*10
					}
				}

				centipawns += sign * (p.Value() + positional)
			}
		}
	}

	score := Score(centipawns)
	if turn == board.Black {
		score = -score
	}
	return score
}

// endgameMaterialThreshold is the total bishop/rook/queen material (in centipawns), summed
// over both sides, below which the king piece-square table switches from the middlegame
// table to the active, centralizing endgame table. Pawns, knights and kings don't count.
const endgameMaterialThreshold = 4 * 500 // a rook per side, doubled

func isEndgame(pos *board.Position) bool {
	total := 0
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for _, p := range []board.Piece{board.Bishop, board.Rook, board.Queen} {
			total += pos.PieceBitboard(c, p).PopCount() * p.Value()
		}
	}
	return total < endgameMaterialThreshold
}

// containsMultiplePawnsOnFile reports whether color has another pawn sharing sq's file,
// i.e. sq's pawn is doubled (or tripled).
func containsMultiplePawnsOnFile(pos *board.Position, c board.Color, sq board.Square) bool {
	mask := board.BitFile(sq.File()) &^ board.BitMask(sq)
	return mask&pos.PieceBitboard(c, board.Pawn) != 0
}

// isPassedPawn reports whether no enemy pawn can ever block or capture the pawn on sq as
// it advances, i.e. it has a clear path to promotion.
func isPassedPawn(pos *board.Position, c board.Color, sq board.Square) bool {
	mask := passedPawnMask(c, sq)
	return mask&pos.PieceBitboard(c.Opponent(), board.Pawn) == 0
}

// NominalValue the absolute nominal value in pawns of a piece. The King has an arbitrary value of 100 pawns.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain for a move.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}

// Package eval implements static position evaluation: material balance, piece-square
// tables, pawn-structure terms and an endgame-aware king safety/activity term.
package eval

import "github.com/ashgrove/vantage/pkg/board"

// The piece-square tables below are transcribed rank-major, with row 0 (indices 0-7) being
// the owning side's promotion rank and row 7 its own back rank. For Black, the index is
// rank*8 plus the file counted A-to-H; White reads the same tables at 63 minus that index,
// i.e. rotated 180 degrees, so White's columns run H-to-A. Our board.File enum runs H-to-A
// (FileH=0..FileA=7), so pstIndex flips the file before applying the white/black mirror.

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	100, 100, 100, 100, 100, 100, 100, 100,
	20, 10, 40, 60, 60, 40, 20, 20,
	5, 5, 25, 40, 40, 25, 5, 5,
	0, 0, 0, 35, 35, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 30, 5, 10, 10, 5, 30, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 25, 25, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgameTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, -5, 20, 30, 30, 20, -5, -10,
	-15, -10, 35, 45, 45, 35, -10, -15,
	-20, -15, 30, 40, 40, 30, -15, -20,
	-25, -20, 25, 25, 25, 20, -20, -25,
	-30, -25, 0, 0, 0, 0, -25, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// centerManhattanDistance[sq] is the Manhattan distance from sq to the nearest of the
// four center squares, used to reward driving the enemy king toward the board edge.
var centerManhattanDistance = [64]int{
	6, 5, 4, 3, 3, 4, 5, 6,
	5, 4, 3, 2, 2, 3, 4, 5,
	4, 3, 2, 1, 1, 2, 3, 4,
	3, 2, 1, 0, 0, 1, 2, 3,
	3, 2, 1, 0, 0, 1, 2, 3,
	4, 3, 2, 1, 1, 2, 3, 4,
	5, 4, 3, 2, 2, 3, 4, 5,
	6, 5, 4, 3, 3, 4, 5, 6,
}

const (
	doubledPawnPenalty = 15
	passedPawnReward   = 25
)

// pstIndex maps a board.Square to an index into the tables above, which assume a
// standard A-to-H file order with row 0 on the owning side's promotion rank. board.File
// runs the opposite way (FileH=0..FileA=7), so the file component is flipped first;
// White then reads index 63-idx, which reverses both ranks and files.
func pstIndex(sq board.Square, c board.Color) int {
	standardFile := int(board.NumFiles) - 1 - sq.File().V()
	idx := sq.Rank().V()*8 + standardFile
	if c == board.White {
		return 63 - idx
	}
	return idx
}

// passedPawnMask returns the bitboard of squares that, if occupied by an enemy pawn,
// would block or contest the given pawn's advance to promotion: its own file and the
// two adjacent files, restricted to ranks strictly ahead of it in its direction of travel.
func passedPawnMask(c board.Color, sq board.Square) board.Bitboard {
	f := sq.File()
	mask := board.BitFile(f)
	if f != board.ZeroFile {
		mask |= board.BitFile(f - 1)
	}
	if f != board.NumFiles-1 {
		mask |= board.BitFile(f + 1)
	}

	var rankMask board.Bitboard
	r := int(sq.Rank())
	if c == board.White {
		for i := r + 1; i < int(board.NumRanks); i++ {
			rankMask |= board.BitRank(board.Rank(i))
		}
	} else {
		for i := 0; i < r; i++ {
			rankMask |= board.BitRank(board.Rank(i))
		}
	}
	return mask & rankMask
}

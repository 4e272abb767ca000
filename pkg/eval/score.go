package eval

import (
	"fmt"

	"github.com/ashgrove/vantage/pkg/board"
)

// Score is a signed centipawn score. Evaluators and searches report it from the perspective
// of the side to move, positive favoring that side. All search and evaluation arithmetic is
// performed in this 32-bit integer domain.
type Score int32

const (
	NegInf         = MinScore - 1
	MinScore Score = -1000000
	MaxScore Score = 1000000
	Inf            = MaxScore + 1

	// Mate is the score of being checkmated on the move, before adjusting for distance
	// to the mating move (see MateIn). It stays well short of MinScore so that subtracting
	// a few hundred plies of adjustment can never cross into the legal score range, and
	// well clear of math.MinInt32 so it can always be negated without overflow.
	Mate Score = MinScore + 100000
)

// MateIn returns the score of being checkmated in the given number of plies from the
// root: closer mates are scored as more severe losses, so that search prefers the
// fastest mate (or, from the losing side, the longest survival).
func MateIn(ply int) Score {
	return Mate + Score(ply)
}

// IsMateScore reports whether s reflects a forced mate rather than a material/positional
// evaluation.
func IsMateScore(s Score) bool {
	return s <= Mate+1000 || s >= -Mate-1000
}

// String renders s as a pawn-fractional value, e.g. "1.50" for 150 centipawns.
func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	} else {
		return -1
	}
}

// Crop crops a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// Less reports whether s is strictly worse for the side it favors than o.
func (s Score) Less(o Score) bool {
	return s < o
}

// Negate returns the score from the opponent's perspective.
func (s Score) Negate() Score {
	return -s
}

package board

import "fmt"

// Outcome represents the winner of a finished game, if any.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "*"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?"
	}
}

// Reason represents why a game reached its outcome.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition3
	Repetition5
	NoProgress
	InsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition3:
		return "threefold repetition"
	case Repetition5:
		return "fivefold repetition"
	case NoProgress:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "?"
	}
}

// Result represents the result of a game, if any.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

// Loss returns the outcome of the given color losing, i.e., the opponent's win.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}

func (r Result) String() string {
	if r.Outcome == Undecided {
		return r.Outcome.String()
	}
	return fmt.Sprintf("%v (%v)", r.Outcome, r.Reason)
}

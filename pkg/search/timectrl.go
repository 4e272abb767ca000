package search

import (
	"fmt"
	"time"

	"github.com/ashgrove/vantage/pkg/board"
)

// TimeControl describes the clock state reported by a UCI "go" command.
type TimeControl struct {
	White, Black time.Duration
	Moves        int // moves remaining to the next time control, 0 if unknown (sudden death)
}

func (tc *TimeControl) String() string {
	if tc == nil {
		return "none"
	}
	return fmt.Sprintf("{white=%v, black=%v, moves=%v}", tc.White, tc.Black, tc.Moves)
}

// Limits returns the soft and hard time budgets for the side to move: soft is the point past
// which a newly-started iteration is not worth beginning, hard is the point at which the
// search must be stopped outright. Budgets the remaining clock evenly over the moves to go,
// i.e. ~1/40th of it per move when that count is unknown (a conservative estimate of game
// length left), with the hard limit at 3x the soft one so a
// search already underway gets a chance to finish its current iteration.
func (tc *TimeControl) Limits(c board.Color) (soft, hard time.Duration) {
	remaining := tc.White
	if c == board.Black {
		remaining = tc.Black
	}

	movesToGo := tc.Moves
	if movesToGo <= 0 {
		movesToGo = 40 // assume sudden death is ~40 moves out
	}

	budget := remaining / time.Duration(movesToGo)
	if budget <= 0 {
		budget = time.Millisecond
	}
	return budget, 3 * budget
}

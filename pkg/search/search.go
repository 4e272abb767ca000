// Package search implements the engine's move search: iterative-deepening principal
// variation search with quiescence, null-window scout re-searches and selective extensions,
// plus the cooperative-cancellation iterative-deepening driver that sits on top of it.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/eval"
	"go.uber.org/atomic"
)

// ErrHalted is returned by a Search implementation when it notices cancel has been set.
var ErrHalted = errors.New("search halted")

// Search runs a single fixed-depth search from b's current position. Implementations must
// poll cancel and return ErrHalted promptly once it is set. pvHint, if non-nil, is the
// principal variation from the previous (shallower) iteration, consumed head-first by move
// ordering to improve move ordering and cutoff rates.
type Search interface {
	Search(ctx context.Context, cancel *atomic.Bool, b *board.Board, depth int, pvHint []board.Move) (nodes uint64, score eval.Score, pv []board.Move, err error)
}

// PV is a completed (or in-progress) search result for one depth of iterative deepening.
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration // cumulative time since the search was launched
}

func (pv PV) String() string {
	return fmt.Sprintf("{depth=%v, score=%v, nodes=%v, time=%v, pv=%v}", pv.Depth, pv.Score, pv.Nodes, pv.Time, printMoves(pv.Moves))
}

func printMoves(moves []board.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Options are iterative-deepening search launch options.
type Options struct {
	// DepthLimit caps the search depth, if set. If nil, there is no depth limit -- the
	// search runs until the time control (if any) halts it or Halt is called.
	DepthLimit *int
	// TimeControl, if set, bounds the search to a computed time budget.
	TimeControl *TimeControl
}

func (o Options) String() string {
	depth := "none"
	if o.DepthLimit != nil {
		depth = fmt.Sprintf("%v", *o.DepthLimit)
	}
	return fmt.Sprintf("{depth=%v, timecontrol=%v}", depth, o.TimeControl)
}

// Launcher launches an iterative-deepening search from the given board, publishing one PV
// per completed depth on the returned channel, latest-only (a new PV may overwrite an
// unread one if the consumer is slow).
type Launcher interface {
	Launch(ctx context.Context, b *board.Board, tt TranspositionTable, noise eval.Random, opt Options) (Handle, <-chan PV)
}

// Handle controls a launched search.
type Handle interface {
	// Halt stops the search and returns the last completed PV.
	Halt() PV
}

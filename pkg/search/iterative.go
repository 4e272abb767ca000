package search

import (
	"context"
	"sync"
	"time"

	"github.com/ashgrove/vantage/pkg/board"
	"github.com/ashgrove/vantage/pkg/eval"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// Iterative is an iterative-deepening Launcher: it repeatedly calls Root.Search at
// increasing depths, publishing one PV per completed depth, until the depth limit, the time
// control or an explicit Halt stops it. The board (and its TT/noise) are not shared across
// concurrent launches -- Launch takes ownership of the given board.
type Iterative struct {
	Root Search
}

func (it Iterative) Launch(ctx context.Context, b *board.Board, tt TranspositionTable, noise eval.Random, opt Options) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{init: make(chan struct{})}
	go h.run(ctx, it.Root, b, noise, opt, out)
	return h, out
}

type handle struct {
	init     chan struct{}
	initOnce sync.Once
	cancel   atomic.Bool

	mu sync.Mutex
	pv PV
}

func (h *handle) markReady() {
	h.initOnce.Do(func() { close(h.init) })
}

// Halt stops the search and returns the last completed PV. It blocks until the search has
// published at least one result (including an empty one if depth 1 never completed).
func (h *handle) Halt() PV {
	h.cancel.Store(true)
	<-h.init

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

func (h *handle) run(ctx context.Context, root Search, b *board.Board, noise eval.Random, opt Options, out chan<- PV) {
	defer close(out)
	defer h.markReady()

	goStart := time.Now()

	var soft time.Duration
	if opt.TimeControl != nil {
		var hard time.Duration
		soft, hard = opt.TimeControl.Limits(b.Turn())
		stopTimer(&h.cancel, hard)
	}

	var pvHint []board.Move
	for depth := 1; ; depth++ {
		if opt.DepthLimit != nil && depth > *opt.DepthLimit {
			return
		}
		if h.cancel.Load() {
			return
		}

		nodes, score, moves, err := root.Search(ctx, &h.cancel, b, depth, pvHint)
		if err != nil {
			if err != ErrHalted {
				logw.Errorf(ctx, "search failed at depth=%v: %v", depth, err)
			}
			return
		}

		score += noise.Evaluate(ctx, b)

		pv := PV{Depth: depth, Moves: moves, Score: score, Nodes: nodes, Time: time.Since(goStart)}

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()
		h.markReady()

		select {
		case out <- pv:
		default:
			select {
			case <-out:
			default:
			}
			out <- pv
		}

		if eval.IsMateScore(score) {
			return
		}
		if opt.TimeControl != nil && time.Since(goStart) >= soft {
			return
		}

		pvHint = append([]board.Move(nil), moves...)
	}
}

// stopTimer polls cancel every 10ms and sets it once hard has elapsed, implementing the
// cooperative cancellation protocol: the search itself never sleeps or blocks.
func stopTimer(cancel *atomic.Bool, hard time.Duration) {
	go func() {
		start := time.Now()
		for {
			time.Sleep(10 * time.Millisecond)
			if cancel.Load() {
				return
			}
			if time.Since(start) >= hard {
				cancel.Store(true)
				return
			}
		}
	}()
}

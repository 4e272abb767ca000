// vantage is a UCI-compatible chess engine: iterative-deepening principal variation search
// with quiescence, null-window scout re-searches and a material/piece-square/pawn-structure
// evaluator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ashgrove/vantage/pkg/engine"
	"github.com/ashgrove/vantage/pkg/engine/console"
	"github.com/ashgrove/vantage/pkg/engine/uci"
	"github.com/ashgrove/vantage/pkg/eval"
	"github.com/ashgrove/vantage/pkg/search"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Uint("depth", 0, "Search depth limit (zero if no limit)")
	hash  = flag.Uint("hash", 64, "Transposition table size in MB advertised at startup (zero disables)")
	noise = flag.Uint("noise", 0, "Evaluation noise in millipawns (zero if deterministic)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: vantage [options]

VANTAGE is a UCI-compatible chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.PVS{
		Eval: eval.Standard{},
	}
	e := engine.New(ctx, "vantage", "ashgrove", s,
		engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash, Noise: *noise}),
		engine.WithZobrist(time.Now().UnixNano()),
	)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in, uci.WithHash(*hash))
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}

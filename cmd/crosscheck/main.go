// Command crosscheck searches the same positions with every rules backend in
// parallel and fails if the backends disagree on perft counts or scores.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/igorjakus/minimax-strikes-back/engine"
	"github.com/igorjakus/minimax-strikes-back/internal/cli"
	"github.com/igorjakus/minimax-strikes-back/rules"
)

var defaultFENs = []string{
	rules.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
}

type outcome struct {
	backend string
	fen     string
	perft   uint64
	score   engine.Score
	move    string
}

func main() {
	depth := flag.Int("depth", 3, "search and perft depth")
	fens := flag.String("fens", "", "semicolon separated FENs (default: built-in set)")
	mode := flag.String("mode", "material", "evaluation mode: material or mate-aware")
	logLevel := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log := cli.Logger(*logLevel).With().Str("run", uuid.NewString()).Logger()

	positions := defaultFENs
	if *fens != "" {
		positions = lo.Map(strings.Split(*fens, ";"), func(s string, _ int) string { return strings.TrimSpace(s) })
	}
	evalMode, err := engine.ParseEvalMode(*mode)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -mode")
	}

	backends := rules.Backends()
	results := make([][]outcome, len(backends))
	var g errgroup.Group
	for i, backend := range backends {
		i, backend := i, backend
		g.Go(func() error {
			// One Searcher per goroutine; a Searcher owns its caches.
			cfg := engine.DefaultConfig()
			cfg.Mode = evalMode
			cfg.Logger = log.With().Str("rules", backend).Logger()
			s, err := engine.NewSearcher(cfg)
			if err != nil {
				return err
			}
			for _, fen := range positions {
				pos, err := rules.New(backend, fen)
				if err != nil {
					return fmt.Errorf("%s: %w", backend, err)
				}
				res := s.BestMove(pos, *depth)
				results[i] = append(results[i], outcome{
					backend: backend,
					fen:     fen,
					perft:   rules.Perft(pos, *depth),
					score:   res.Score,
					move:    fmt.Sprint(res.Move),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("crosscheck aborted")
	}

	failed := false
	for j, fen := range positions {
		row := lo.Map(results, func(rs []outcome, _ int) outcome { return rs[j] })
		perfts := lo.Uniq(lo.Map(row, func(o outcome, _ int) uint64 { return o.perft }))
		scores := lo.Uniq(lo.Map(row, func(o outcome, _ int) engine.Score { return o.score }))
		ev := log.Info()
		if len(perfts) != 1 || len(scores) != 1 {
			failed = true
			ev = log.Error()
		}
		for _, o := range row {
			ev = ev.Dict(o.backend, outcomeDict(o))
		}
		ev.Str("fen", fen).Int("depth", *depth).Msg("crosscheck")
	}
	if failed {
		fmt.Println("backends disagree")
		os.Exit(1)
	}
	fmt.Println("ok")
}

func outcomeDict(o outcome) *zerolog.Event {
	return zerolog.Dict().
		Uint64("perft", o.perft).
		Int32("score", int32(o.score)).
		Str("move", o.move)
}

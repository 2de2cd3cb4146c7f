// Command minimax scores a position with a fixed-depth minimax search and
// prints the score. With no flags it searches the start position 4 plies
// deep.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/igorjakus/minimax-strikes-back/engine"
	"github.com/igorjakus/minimax-strikes-back/internal/cli"
	"github.com/igorjakus/minimax-strikes-back/rules"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("minimax")
	}
}

// run does all validation before the profile starts, so the profile is
// always stopped on the way out.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("minimax", flag.ContinueOnError)
	depth := fs.Int("depth", 4, "search depth in plies")
	fen := fs.String("fen", rules.StartFEN, "FEN to search")
	backend := fs.String("rules", rules.DefaultBackend, "rules backend: dragontooth, goose or notnil")
	prune := fs.Bool("prune", true, "use alpha-beta pruning")
	cache := fs.Bool("cache", true, "cache leaf evaluations")
	cacheNodes := fs.Bool("cache-nodes", false, "cache interior results by depth and bound")
	mode := fs.String("mode", "material", "evaluation mode: material or mate-aware")
	logLevel := fs.String("log-level", "info", "zerolog level")
	profDir := fs.String("cpuprofile", "", "write a CPU profile into this directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := cli.Logger(*logLevel)

	pos, err := rules.New(*backend, *fen)
	if err != nil {
		return fmt.Errorf("bad position: %w", err)
	}
	if *fen == rules.StartFEN {
		if n := len(pos.LegalMoves()); n != 20 {
			return fmt.Errorf("%s: start position has %d legal moves, want 20", *backend, n)
		}
	}

	evalMode, err := engine.ParseEvalMode(*mode)
	if err != nil {
		return fmt.Errorf("bad -mode: %w", err)
	}
	cfg := engine.DefaultConfig()
	cfg.Mode = evalMode
	cfg.Pruning = *prune
	cfg.CacheLeaves = *cache
	cfg.CacheNodes = *cacheNodes
	cfg.Logger = logger
	s, err := engine.NewSearcher(cfg)
	if err != nil {
		return err
	}

	prof := cli.Profile(*profDir, false)
	start := time.Now()
	res := s.BestMove(pos, *depth)
	elapsed := time.Since(start)
	prof.Stop()

	fmt.Fprintln(out, res.Score)
	logger.Info().
		Str("rules", *backend).
		Int("depth", *depth).
		Str("pv", res.PV.String()).
		Uint64("nodes", res.Stats.Nodes).
		Dur("elapsed", elapsed).
		Msg("done")
	return nil
}

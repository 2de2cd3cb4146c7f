package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/igorjakus/minimax-strikes-back/engine"
	"github.com/igorjakus/minimax-strikes-back/internal/cli"
	"github.com/igorjakus/minimax-strikes-back/rules"
)

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	backend := flag.String("rules", rules.DefaultBackend, "rules backend: dragontooth, goose or notnil")
	prune := flag.Bool("prune", true, "use alpha-beta pruning")
	cacheNodes := flag.Bool("cache-nodes", false, "cache interior results")
	keep := flag.Bool("keep-cache", false, "keep the caches between repeats")
	profDir := flag.String("profile", "", "write a profile into this directory")
	memProf := flag.Bool("mem", false, "profile the heap instead of the CPU")
	logLevel := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log := cli.Logger(*logLevel).With().Str("run", uuid.NewString()).Logger()
	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}

	fen := rules.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := rules.New(*backend, fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}

	cfg := engine.DefaultConfig()
	cfg.Pruning = *prune
	cfg.CacheNodes = *cacheNodes
	cfg.KeepCache = *keep
	cfg.Logger = log
	s, err := engine.NewSearcher(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("searcher")
	}

	fmt.Printf("searchbench: fen=%q rules=%s depth=%d repeat=%d\n", fen, *backend, *depthFlag, *repeatFlag)

	prof := cli.Profile(*profDir, *memProf)
	defer prof.Stop()

	startAll := time.Now()
	var nodes uint64
	for i := 0; i < *repeatFlag; i++ {
		iterStart := time.Now()
		res := s.BestMove(pos, *depthFlag)
		iterElapsed := time.Since(iterStart)
		nodes += res.Stats.Nodes

		fmt.Printf("iteration %d: bestmove %v score %d time=%v\n", i+1, res.Move, res.Score, iterElapsed)
		for _, line := range res.Stats.Lines() {
			fmt.Println(line)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v\n", totalElapsed)
	log.Info().
		Uint64("nodes", nodes).
		Float64("nps", float64(nodes)/totalElapsed.Seconds()).
		Msg("searchbench finished")
}

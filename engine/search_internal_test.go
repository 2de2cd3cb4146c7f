package engine

import (
	"math/rand"
	"testing"
)

func newTestSearcher(t testing.TB, mutate func(*Config)) *Searcher {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewSearcher(cfg)
	if err != nil {
		t.Fatalf("NewSearcher: %v", err)
	}
	return s
}

func TestAlphaBetaTextbookTree(t *testing.T) {
	root := leafTree(2, []int{3, 5, 6, 9, 1, 2, 0, -1})
	s := newTestSearcher(t, nil)

	if got := s.Minimax(root, 3, true); got != 5 {
		t.Fatalf("minimax: got %d want 5", got)
	}
	res := s.BestMove(root, 3)
	if res.Score != 5 {
		t.Fatalf("alpha-beta: got %d want 5", res.Score)
	}
	if res.Stats.Cutoffs == 0 {
		t.Fatalf("expected at least one cutoff, stats %+v", res.Stats)
	}
	if len(res.PV.Moves) != 3 {
		t.Fatalf("expected a 3-move PV, got %q", res.PV.String())
	}
	if res.Move != root.LegalMoves()[0] {
		t.Fatalf("expected the first root move, got %v", res.Move)
	}
}

func TestPruningMatchesMinimaxOnRandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(0xC0DE))
	for i := 0; i < 200; i++ {
		root := randomDAG(rng, 5, 6, 4)
		for depth := 0; depth <= 5; depth++ {
			for _, maximize := range []bool{true, false} {
				plain := newTestSearcher(t, func(c *Config) { c.CacheLeaves = false })
				want := plain.Minimax(root, depth, maximize)

				pruned := newTestSearcher(t, func(c *Config) { c.CacheLeaves = false })
				got := pruned.AlphaBeta(root, depth, MinScore, MaxScore, maximize)
				if got != want {
					t.Fatalf("tree %d depth %d maximize %v: alpha-beta %d, minimax %d", i, depth, maximize, got, want)
				}
				if pruned.Stats().Nodes > plain.Stats().Nodes {
					t.Fatalf("tree %d depth %d: pruning visited more nodes (%d > %d)", i, depth, pruned.Stats().Nodes, plain.Stats().Nodes)
				}
			}
		}
	}
}

func TestCachesAreTransparentOnRandomTrees(t *testing.T) {
	configs := []struct {
		name   string
		mutate func(*Config)
	}{
		{"none", func(c *Config) { c.CacheLeaves = false }},
		{"leaves", func(c *Config) { c.CacheLeaves = true }},
		{"nodes", func(c *Config) { c.CacheLeaves = false; c.CacheNodes = true }},
		{"both", func(c *Config) { c.CacheNodes = true }},
		{"both-unpruned", func(c *Config) { c.CacheNodes = true; c.Pruning = false }},
		{"mate-aware", func(c *Config) { c.CacheNodes = true; c.Mode = MateAware }},
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		root := randomDAG(rng, 5, 5, 4)
		for depth := 1; depth <= 5; depth++ {
			for _, maximize := range []bool{true, false} {
				for _, tc := range configs {
					s := newTestSearcher(t, tc.mutate)
					ref := newTestSearcher(t, func(c *Config) {
						c.CacheLeaves = false
						c.Mode = s.cfg.Mode
					})
					want := ref.Minimax(root, depth, maximize)

					var got Score
					if s.cfg.Pruning {
						got = s.AlphaBeta(root, depth, MinScore, MaxScore, maximize)
					} else {
						got = s.Minimax(root, depth, maximize)
					}
					if got != want {
						t.Fatalf("tree %d depth %d maximize %v config %s: got %d want %d", i, depth, maximize, tc.name, got, want)
					}
				}
			}
		}
	}
}

func TestNodeCacheServesTranspositions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	root := randomDAG(rng, 5, 3, 4)
	s := newTestSearcher(t, func(c *Config) { c.CacheNodes = true })
	s.BestMove(root, 5)
	if s.Stats().NodeCache.Writes == 0 {
		t.Fatalf("node cache never written")
	}
	if st := s.Stats(); st.LeafCache.Hits+st.NodeCache.Hits == 0 {
		t.Fatalf("no cache hit on a DAG with shared nodes: %+v", st)
	}
}

func TestBoundsNarrowMonotonically(t *testing.T) {
	type window struct {
		maximize    bool
		alpha, beta Score
	}
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		root := randomDAG(rng, 4, 6, 5)
		s := newTestSearcher(t, nil)

		seen := make(map[uint64]window)
		observed := 0
		s.trace = func(frame uint64, maximize bool, alpha, beta Score) {
			observed++
			prev, ok := seen[frame]
			seen[frame] = window{maximize, alpha, beta}
			if !ok {
				return
			}
			if maximize && (alpha < prev.alpha || beta != prev.beta) {
				t.Fatalf("tree %d frame %d: maximizing window went from [%d,%d] to [%d,%d]", i, frame, prev.alpha, prev.beta, alpha, beta)
			}
			if !maximize && (beta > prev.beta || alpha != prev.alpha) {
				t.Fatalf("tree %d frame %d: minimizing window went from [%d,%d] to [%d,%d]", i, frame, prev.alpha, prev.beta, alpha, beta)
			}
		}
		s.AlphaBeta(root, 4, MinScore, MaxScore, true)
		if observed == 0 {
			t.Fatalf("tree %d: trace never fired", i)
		}
	}
}

func TestZeroDepthIsEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := newTestSearcher(t, nil)
	for i := 0; i < 50; i++ {
		root := randomDAG(rng, 2, 3, 3)
		want := s.Evaluator().Evaluate(root)
		if got := s.Search(root, 0); got != want {
			t.Fatalf("search(pos, 0) = %d, evaluate = %d", got, want)
		}
		if got := s.Search(root, -3); got != want {
			t.Fatalf("negative depth: got %d want %d", got, want)
		}
	}
}

func TestOngoingWithoutMovesKeepsSentinel(t *testing.T) {
	broken := &treePos{id: 1, side: White}
	s := newTestSearcher(t, nil)
	if got := s.Minimax(broken, 2, true); got != MinScore {
		t.Fatalf("maximizing: got %d want MinScore", got)
	}
	if got := s.AlphaBeta(broken, 2, MinScore, MaxScore, false); got != MaxScore {
		t.Fatalf("minimizing: got %d want MaxScore", got)
	}
}

func TestTerminalNodesAreLeaves(t *testing.T) {
	child := &treePos{id: 3, side: White, pawns: [2]int{0, 4}}
	mated := &treePos{id: 2, side: Black, status: Checkmate, pawns: [2]int{1, 7}, children: []*treePos{child}}
	root := &treePos{id: 1, side: White, children: []*treePos{mated}}

	material := newTestSearcher(t, nil)
	if got := material.Search(root, 3); got != -6 {
		t.Fatalf("material-only: got %d want -6", got)
	}
	mateAware := newTestSearcher(t, func(c *Config) { c.Mode = MateAware })
	if got := mateAware.Search(root, 3); got != MateScore {
		t.Fatalf("mate-aware: got %d want %d", got, MateScore)
	}
}

func TestKeepCacheCarriesEntriesAcrossSearches(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	root := randomDAG(rng, 3, 4, 3)

	s := newTestSearcher(t, func(c *Config) { c.KeepCache = true })
	first := s.Search(root, 3)
	if s.leaves.Len() == 0 {
		t.Fatalf("leaf cache empty after search")
	}
	second := s.Search(root, 3)
	if first != second {
		t.Fatalf("scores differ across searches: %d vs %d", first, second)
	}
	if s.Stats().LeafCache.Misses != 0 {
		t.Fatalf("second search missed the warm cache %d times", s.Stats().LeafCache.Misses)
	}

	fresh := newTestSearcher(t, nil)
	fresh.Search(root, 3)
	size := fresh.leaves.Len()
	fresh.Search(root, 3)
	if fresh.leaves.Len() != size || fresh.Stats().LeafCache.Misses == 0 {
		t.Fatalf("default searcher should start each search with an empty cache")
	}
}

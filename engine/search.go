package engine

// Searcher runs depth-bounded minimax over a Position. It owns the caches of
// the search it is running, so one Searcher serves one goroutine; independent
// searches use independent Searchers.
type Searcher struct {
	cfg    Config
	eval   *Evaluator
	leaves *TransTable
	nodes  *NodeTable
	stats  Stats

	// trace, when set, observes the window after every child of an interior
	// node has been folded in. frame identifies the node's call.
	trace func(frame uint64, maximize bool, alpha, beta Score)
}

// Result is the outcome of a top-level search.
type Result struct {
	Score Score
	Move  Move // nil when the root itself is a leaf
	PV    PVLine
	Stats Stats
}

func NewSearcher(cfg Config) (*Searcher, error) {
	eval, err := NewEvaluator(cfg.Weights, cfg.Mode)
	if err != nil {
		return nil, err
	}
	s := &Searcher{cfg: cfg, eval: eval}
	s.Reset()
	return s, nil
}

func (s *Searcher) Evaluator() *Evaluator { return s.eval }

func (s *Searcher) Config() Config { return s.cfg }

// Reset drops both caches and the counters.
func (s *Searcher) Reset() {
	s.leaves, s.nodes = nil, nil
	if s.cfg.CacheLeaves {
		s.leaves = NewTransTable()
	}
	if s.cfg.CacheNodes {
		s.nodes = NewNodeTable()
	}
	s.stats = Stats{}
}

func (s *Searcher) Stats() Stats {
	st := s.stats
	if s.leaves != nil {
		st.LeafCache = s.leaves.Stats()
	}
	if s.nodes != nil {
		st.NodeCache = s.nodes.Stats()
	}
	return st
}

// Search scores pos to depth plies with White as the maximizing side.
func (s *Searcher) Search(pos Position, depth int) Score {
	return s.BestMove(pos, depth).Score
}

// BestMove is Search plus the move and principal variation that realise the
// score. The caches start empty unless Config.KeepCache is set.
func (s *Searcher) BestMove(pos Position, depth int) Result {
	if s.cfg.KeepCache {
		s.stats = Stats{}
		if s.leaves != nil {
			s.leaves.stats = TableStats{}
		}
		if s.nodes != nil {
			s.nodes.stats = TableStats{}
		}
	} else {
		s.Reset()
	}

	maximize := pos.SideToMove() == White
	var pv PVLine
	var score Score
	if s.cfg.Pruning {
		score = s.alphaBeta(pos, depth, 0, MinScore, MaxScore, maximize, &pv)
	} else {
		score = s.minimax(pos, depth, 0, maximize, &pv)
	}

	res := Result{Score: score, PV: pv.Clone(), Stats: s.Stats()}
	res.Move = res.PV.GetPVMove()

	s.cfg.Logger.Debug().
		Int("depth", depth).
		Bool("maximize", maximize).
		Int32("score", int32(score)).
		Str("pv", res.PV.String()).
		Object("stats", res.Stats).
		Msg("search finished")
	return res
}

// Minimax is the unpruned search. It uses whatever the caches currently hold.
func (s *Searcher) Minimax(pos Position, depth int, maximize bool) Score {
	return s.minimax(pos, depth, 0, maximize, nil)
}

// AlphaBeta searches pos inside the window [alpha, beta]. Within the window
// the result equals Minimax; outside it the result is a bound on the same
// side as the window edge it crossed.
func (s *Searcher) AlphaBeta(pos Position, depth int, alpha, beta Score, maximize bool) Score {
	return s.alphaBeta(pos, depth, 0, alpha, beta, maximize, nil)
}

func (s *Searcher) leaf(pos Position) Score {
	s.stats.Leaves++
	return s.eval.EvaluateCached(pos, s.leaves)
}

func (s *Searcher) minimax(pos Position, depth, ply int, maximize bool, pv *PVLine) Score {
	s.stats.Nodes++
	if depth <= 0 || pos.Status() != Ongoing {
		pv.Clear()
		return s.leaf(pos)
	}
	pv.Clear()

	var hash uint64
	if s.nodes != nil {
		hash = pos.Hash()
		if ply > 0 {
			if score, ok := s.nodes.lookup(hash, depth, maximize, MinScore, MaxScore); ok {
				return score
			}
		}
	}

	best := MaxScore
	if maximize {
		best = MinScore
	}
	var childPV PVLine
	for _, move := range pos.LegalMoves() {
		score := s.minimax(pos.Apply(move), depth-1, ply+1, !maximize, &childPV)
		if (maximize && score > best) || (!maximize && score < best) {
			best = score
			pv.Update(move, childPV)
		}
	}

	if s.nodes != nil {
		s.nodes.store(hash, depth, maximize, MinScore, MaxScore, best)
	}
	return best
}

func (s *Searcher) alphaBeta(pos Position, depth, ply int, alpha, beta Score, maximize bool, pv *PVLine) Score {
	s.stats.Nodes++
	frame := s.stats.Nodes
	if depth <= 0 || pos.Status() != Ongoing {
		pv.Clear()
		return s.leaf(pos)
	}
	pv.Clear()

	var hash uint64
	if s.nodes != nil {
		hash = pos.Hash()
		// The root always searches so that the caller gets a move back.
		if ply > 0 {
			if score, ok := s.nodes.lookup(hash, depth, maximize, alpha, beta); ok {
				return score
			}
		}
	}
	alphaOrig, betaOrig := alpha, beta

	best := MaxScore
	if maximize {
		best = MinScore
	}
	var childPV PVLine
	for _, move := range pos.LegalMoves() {
		score := s.alphaBeta(pos.Apply(move), depth-1, ply+1, alpha, beta, !maximize, &childPV)
		if maximize {
			if score > best {
				best = score
				pv.Update(move, childPV)
			}
			alpha = Max(alpha, best)
		} else {
			if score < best {
				best = score
				pv.Update(move, childPV)
			}
			beta = Min(beta, best)
		}
		if s.trace != nil {
			s.trace(frame, maximize, alpha, beta)
		}
		// Remaining siblings cannot change the decision above this node.
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}

	if s.nodes != nil {
		s.nodes.store(hash, depth, maximize, alphaOrig, betaOrig, best)
	}
	return best
}

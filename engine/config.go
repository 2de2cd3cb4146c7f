package engine

import "github.com/rs/zerolog"

// Config holds everything a Searcher is built from.
type Config struct {
	Weights Weights
	Mode    EvalMode

	// Pruning selects alpha-beta over plain minimax. Both return the same
	// score; pruning only visits fewer nodes.
	Pruning bool

	// CacheLeaves memoizes leaf evaluations by position hash.
	CacheLeaves bool
	// CacheNodes memoizes interior results, qualified by depth, mover and
	// bound type.
	CacheNodes bool
	// KeepCache keeps both tables alive between top-level searches. They are
	// still dropped with the Searcher.
	KeepCache bool

	Logger zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Weights:     DefaultWeights,
		Mode:        MaterialOnly,
		Pruning:     true,
		CacheLeaves: true,
		Logger:      zerolog.Nop(),
	}
}

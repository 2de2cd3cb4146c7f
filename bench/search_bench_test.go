package bench

import (
	"testing"

	"github.com/igorjakus/minimax-strikes-back/engine"
	"github.com/igorjakus/minimax-strikes-back/rules"
)

func benchSearch(b *testing.B, backend string, depth int, mutate func(*engine.Config)) {
	pos, err := rules.Startpos(backend)
	if err != nil {
		b.Fatalf("Startpos: %v", err)
	}
	cfg := engine.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := engine.NewSearcher(cfg)
	if err != nil {
		b.Fatalf("NewSearcher: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	var nodes uint64
	for i := 0; i < b.N; i++ {
		nodes += s.BestMove(pos, depth).Stats.Nodes
	}
	b.ReportMetric(float64(nodes)/float64(b.N), "nodes/op")
}

func BenchmarkSearch_Initial_D4(b *testing.B) {
	variants := []struct {
		name   string
		mutate func(*engine.Config)
	}{
		{"alphabeta", nil},
		{"alphabeta-nocache", func(c *engine.Config) { c.CacheLeaves = false }},
		{"alphabeta-nodecache", func(c *engine.Config) { c.CacheNodes = true }},
		{"minimax", func(c *engine.Config) { c.Pruning = false }},
	}
	for _, backend := range rules.Backends() {
		for _, v := range variants {
			b.Run(backend+"/"+v.name, func(b *testing.B) { benchSearch(b, backend, 4, v.mutate) })
		}
	}
}

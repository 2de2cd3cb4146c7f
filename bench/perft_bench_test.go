package bench

import (
	"testing"

	"github.com/igorjakus/minimax-strikes-back/rules"
)

func benchPerft(b *testing.B, backend, fen string, depth int) {
	pos, err := rules.New(backend, fen)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rules.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	for _, backend := range rules.Backends() {
		b.Run(backend, func(b *testing.B) { benchPerft(b, backend, rules.StartFEN, 4) })
	}
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	for _, backend := range rules.Backends() {
		b.Run(backend, func(b *testing.B) { benchPerft(b, backend, kiwipete, 3) })
	}
}

package rules

import "github.com/igorjakus/minimax-strikes-back/engine"

// Perft counts the leaf nodes of the legal move tree to depth plies.
func Perft(pos engine.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(pos.Apply(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move's UCI string.
func PerftDivide(pos engine.Position, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range pos.LegalMoves() {
		div[m.String()] = Perft(pos.Apply(m), depth-1)
	}
	return div
}

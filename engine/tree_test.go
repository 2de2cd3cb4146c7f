package engine

import (
	"fmt"
	"math/rand"
)

// treeMove and treePos form a synthetic game DAG for exercising the search
// without a rules engine. Every node has a distinct hash; nodes are shared
// between parents so the caches see real transpositions.
type treeMove struct{ to *treePos }

func (m treeMove) String() string { return fmt.Sprintf("n%d", m.to.id) }

type treePos struct {
	id       uint64
	side     Side
	status   Status
	pawns    [2]int
	queens   [2]int
	children []*treePos
}

func (p *treePos) LegalMoves() []Move {
	moves := make([]Move, len(p.children))
	for i, c := range p.children {
		moves[i] = treeMove{c}
	}
	return moves
}

func (p *treePos) Apply(m Move) Position { return m.(treeMove).to }

func (p *treePos) Status() Status { return p.status }

func (p *treePos) PieceCount(kind PieceKind, side Side) int {
	switch kind {
	case Pawn:
		return p.pawns[side]
	case Queen:
		return p.queens[side]
	case King:
		return 1
	}
	return 0
}

func (p *treePos) Hash() uint64 { return p.id*0x9E3779B97F4A7C15 + 1 }

func (p *treePos) SideToMove() Side { return p.side }

// randomDAG builds a layered DAG of the given depth. Layer i holds width
// nodes; every non-leaf node links to 1..maxBranch nodes of layer i+1.
func randomDAG(rng *rand.Rand, depth, width, maxBranch int) *treePos {
	var id uint64
	layers := make([][]*treePos, depth+1)
	for d := 0; d <= depth; d++ {
		side := White
		if d%2 == 1 {
			side = Black
		}
		n := width
		if d == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			id++
			p := &treePos{id: id, side: side}
			p.pawns = [2]int{rng.Intn(9), rng.Intn(9)}
			p.queens = [2]int{rng.Intn(2), rng.Intn(2)}
			layers[d] = append(layers[d], p)
		}
	}
	for d := 0; d < depth; d++ {
		for _, p := range layers[d] {
			// Roughly one node in eight ends the game early.
			if d > 0 && rng.Intn(8) == 0 {
				p.status = Status(1 + rng.Intn(3))
				continue
			}
			branch := 1 + rng.Intn(maxBranch)
			for i := 0; i < branch; i++ {
				p.children = append(p.children, layers[d+1][rng.Intn(len(layers[d+1]))])
			}
		}
	}
	return layers[0][0]
}

// leafTree builds a uniform tree whose leaves carry the given scores as
// white pawn surplus, left to right.
func leafTree(branch int, scores []int) *treePos {
	var id uint64
	var build func(depth int, side Side, scores []int) *treePos
	build = func(depth int, side Side, scores []int) *treePos {
		id++
		p := &treePos{id: id, side: side}
		if len(scores) == 1 {
			if scores[0] >= 0 {
				p.pawns[White] = scores[0]
			} else {
				p.pawns[Black] = -scores[0]
			}
			return p
		}
		chunk := len(scores) / branch
		for i := 0; i < branch; i++ {
			p.children = append(p.children, build(depth+1, side.Other(), scores[i*chunk:(i+1)*chunk]))
		}
		return p
	}
	return build(0, White, scores)
}

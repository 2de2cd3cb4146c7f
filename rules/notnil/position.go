// Package notnil adapts github.com/notnil/chess to the engine's Position
// interface. notnil positions are already persistent: Update returns a new
// position and leaves the old one alone.
package notnil

import (
	"encoding/binary"
	"fmt"

	"github.com/notnil/chess"

	"github.com/igorjakus/minimax-strikes-back/engine"
)

const fiftyMoveLimit = 100

// Move wraps a notnil move.
type Move struct {
	m *chess.Move
}

func (m Move) String() string { return m.m.String() }

func (m Move) Raw() *chess.Move { return m.m }

var pieceKinds = map[chess.PieceType]engine.PieceKind{
	chess.Pawn:   engine.Pawn,
	chess.Knight: engine.Knight,
	chess.Bishop: engine.Bishop,
	chess.Rook:   engine.Rook,
	chess.Queen:  engine.Queen,
	chess.King:   engine.King,
}

type Position struct {
	pos    *chess.Position
	counts *[2][engine.NPieceKinds]int
}

func Startpos() *Position {
	return &Position{pos: chess.StartingPosition()}
}

func FromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil: parse FEN %q: %w", fen, err)
	}
	return &Position{pos: chess.NewGame(opt).Position()}, nil
}

func (p *Position) LegalMoves() []engine.Move {
	raw := p.pos.ValidMoves()
	moves := make([]engine.Move, len(raw))
	for i, m := range raw {
		moves[i] = Move{m}
	}
	return moves
}

func (p *Position) Apply(m engine.Move) engine.Position {
	return &Position{pos: p.pos.Update(m.(Move).m)}
}

func (p *Position) Status() engine.Status {
	switch p.pos.Status() {
	case chess.Checkmate:
		return engine.Checkmate
	case chess.Stalemate:
		return engine.Stalemate
	}
	if p.pos.HalfMoveClock() >= fiftyMoveLimit {
		return engine.Draw
	}
	return engine.Ongoing
}

func (p *Position) PieceCount(kind engine.PieceKind, side engine.Side) int {
	if p.counts == nil {
		var counts [2][engine.NPieceKinds]int
		for _, piece := range p.pos.Board().SquareMap() {
			k, ok := pieceKinds[piece.Type()]
			if !ok {
				continue
			}
			if piece.Color() == chess.White {
				counts[engine.White][k]++
			} else {
				counts[engine.Black][k]++
			}
		}
		p.counts = &counts
	}
	return p.counts[side][kind]
}

// Hash folds notnil's 128-bit position hash into 64 bits.
func (p *Position) Hash() uint64 {
	h := p.pos.Hash()
	return binary.LittleEndian.Uint64(h[:8]) ^ binary.LittleEndian.Uint64(h[8:])
}

func (p *Position) SideToMove() engine.Side {
	if p.pos.Turn() == chess.White {
		return engine.White
	}
	return engine.Black
}

func (p *Position) FEN() string { return p.pos.String() }

func (p *Position) String() string { return p.FEN() }

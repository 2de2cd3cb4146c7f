// Package dragontooth adapts github.com/dylhunn/dragontoothmg to the
// engine's Position interface.
package dragontooth

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/igorjakus/minimax-strikes-back/engine"
)

const fiftyMoveLimit = 100

// Move wraps a dragontoothmg move.
type Move struct {
	m dragontoothmg.Move
}

func (m Move) String() string {
	mv := m.m
	return mv.String()
}

// Raw returns the underlying dragontoothmg move.
func (m Move) Raw() dragontoothmg.Move { return m.m }

// Position is an immutable dragontoothmg board. The legal move list is
// generated at most once per position.
type Position struct {
	board dragontoothmg.Board
	moves []dragontoothmg.Move
	gen   bool
}

func Startpos() *Position {
	return &Position{board: dragontoothmg.ParseFen(dragontoothmg.Startpos)}
}

// FromFEN parses fen. dragontoothmg panics on malformed input, so the panic is
// turned into an error here.
func FromFEN(fen string) (p *Position, err error) {
	if len(strings.Fields(fen)) < 4 {
		return nil, fmt.Errorf("dragontooth: malformed FEN %q", fen)
	}
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("dragontooth: malformed FEN %q: %v", fen, r)
		}
	}()
	return &Position{board: dragontoothmg.ParseFen(fen)}, nil
}

func (p *Position) legal() []dragontoothmg.Move {
	if !p.gen {
		p.moves = p.board.GenerateLegalMoves()
		p.gen = true
	}
	return p.moves
}

func (p *Position) LegalMoves() []engine.Move {
	raw := p.legal()
	moves := make([]engine.Move, len(raw))
	for i, m := range raw {
		moves[i] = Move{m}
	}
	return moves
}

// Apply plays m on a copy of the board. Board is a plain value type, so the
// copy shares nothing with the receiver.
func (p *Position) Apply(m engine.Move) engine.Position {
	next := &Position{board: p.board}
	next.board.Apply(m.(Move).m)
	return next
}

func (p *Position) Status() engine.Status {
	if len(p.legal()) == 0 {
		if p.board.OurKingInCheck() {
			return engine.Checkmate
		}
		return engine.Stalemate
	}
	if p.board.Halfmoveclock >= fiftyMoveLimit {
		return engine.Draw
	}
	return engine.Ongoing
}

func (p *Position) PieceCount(kind engine.PieceKind, side engine.Side) int {
	bb := &p.board.White
	if side == engine.Black {
		bb = &p.board.Black
	}
	switch kind {
	case engine.Pawn:
		return bits.OnesCount64(bb.Pawns)
	case engine.Knight:
		return bits.OnesCount64(bb.Knights)
	case engine.Bishop:
		return bits.OnesCount64(bb.Bishops)
	case engine.Rook:
		return bits.OnesCount64(bb.Rooks)
	case engine.Queen:
		return bits.OnesCount64(bb.Queens)
	case engine.King:
		return bits.OnesCount64(bb.Kings)
	}
	return 0
}

func (p *Position) Hash() uint64 { return p.board.Hash() }

func (p *Position) SideToMove() engine.Side {
	if p.board.Wtomove {
		return engine.White
	}
	return engine.Black
}

func (p *Position) FEN() string { return p.board.ToFen() }

func (p *Position) String() string { return p.FEN() }

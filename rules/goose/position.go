// Package goose adapts the GooseEngineMG move generator to the engine's
// Position interface.
package goose

import (
	"fmt"
	"strings"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/igorjakus/minimax-strikes-back/engine"
)

const fiftyMoveLimit = 100

// Move wraps a goosemg move.
type Move struct {
	m gm.Move
}

func (m Move) String() string { return m.m.String() }

func (m Move) Raw() gm.Move { return m.m }

var pieceKinds = [...]struct {
	kind  engine.PieceKind
	white gm.Piece
	black gm.Piece
}{
	{engine.Pawn, gm.WhitePawn, gm.BlackPawn},
	{engine.Knight, gm.WhiteKnight, gm.BlackKnight},
	{engine.Bishop, gm.WhiteBishop, gm.BlackBishop},
	{engine.Rook, gm.WhiteRook, gm.BlackRook},
	{engine.Queen, gm.WhiteQueen, gm.BlackQueen},
	{engine.King, gm.WhiteKing, gm.BlackKing},
}

// Position is an immutable goosemg board. Moves and material are computed on
// first use.
type Position struct {
	board gm.Board

	moves  []gm.Move
	counts *[2][engine.NPieceKinds]int
}

func Startpos() *Position {
	p, err := FromFEN(gm.FENStartPos)
	if err != nil {
		panic(err)
	}
	return p
}

func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("goose: malformed FEN %q", fen)
	}
	b, err := gm.ParseFEN(strings.Join(fields, " "))
	if err != nil {
		return nil, fmt.Errorf("goose: parse FEN %q: %w", fen, err)
	}
	return &Position{board: *b}, nil
}

func (p *Position) legal() []gm.Move {
	if p.moves == nil {
		p.moves = p.board.GenerateMoves()
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

// Apply makes m on a copy of the board; the receiver keeps its own.
func (p *Position) Apply(m engine.Move) engine.Position {
	next := &Position{board: p.board}
	if ok, _ := next.board.MakeMove(m.(Move).m); !ok {
		panic(fmt.Sprintf("goose: illegal move %s in %s", m, p.FEN()))
	}
	return next
}

func (p *Position) Status() engine.Status {
	switch {
	case p.board.InCheckmate():
		return engine.Checkmate
	case p.board.InStalemate():
		return engine.Stalemate
	case p.board.HalfmoveClock() >= fiftyMoveLimit:
		return engine.Draw
	}
	return engine.Ongoing
}

func (p *Position) PieceCount(kind engine.PieceKind, side engine.Side) int {
	if p.counts == nil {
		var counts [2][engine.NPieceKinds]int
		for sq := 0; sq < 64; sq++ {
			piece := p.board.PieceAt(gm.Square(sq))
			if piece == gm.NoPiece {
				continue
			}
			for _, pk := range pieceKinds {
				if piece == pk.white {
					counts[engine.White][pk.kind]++
				} else if piece == pk.black {
					counts[engine.Black][pk.kind]++
				}
			}
		}
		p.counts = &counts
	}
	return p.counts[side][kind]
}

// Hash is the zobrist key MakeMove keeps up to date.
func (p *Position) Hash() uint64 { return p.board.Hash() }

func (p *Position) SideToMove() engine.Side {
	if p.board.SideToMove() == gm.White {
		return engine.White
	}
	return engine.Black
}

func (p *Position) FEN() string { return p.board.ToFEN() }

func (p *Position) String() string { return p.FEN() }

package engine

import "fmt"

// Side identifies one of the two players. White is the maximizing side.
type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) Other() Side { return s ^ 1 }

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colourless piece type used to index the weight table.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NPieceKinds
)

var pieceKindNames = [NPieceKinds]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

func (k PieceKind) String() string {
	if k < NPieceKinds {
		return pieceKindNames[k]
	}
	return fmt.Sprintf("PieceKind(%d)", uint8(k))
}

// Status is the rules engine's verdict on whether play continues.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	Draw
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Move is one legal transition out of a Position. String returns the move
// in UCI long algebraic notation.
type Move interface {
	String() string
}

// Position is the capability set the search consumes from a rules engine.
//
// Implementations must be immutable from the caller's point of view: Apply
// returns a new Position and leaves the receiver untouched. A Position whose
// Status is Ongoing must have at least one legal move.
type Position interface {
	LegalMoves() []Move
	Apply(m Move) Position
	Status() Status
	PieceCount(kind PieceKind, side Side) int
	Hash() uint64
	SideToMove() Side
}

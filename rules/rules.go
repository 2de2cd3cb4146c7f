// Package rules selects a rules engine backend and provides helpers that work
// on any engine.Position: perft, colour mirroring and UCI move lookup.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/igorjakus/minimax-strikes-back/engine"
	"github.com/igorjakus/minimax-strikes-back/rules/dragontooth"
	"github.com/igorjakus/minimax-strikes-back/rules/goose"
	"github.com/igorjakus/minimax-strikes-back/rules/notnil"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	Dragontooth = "dragontooth"
	Goose       = "goose"
	Notnil      = "notnil"

	DefaultBackend = Dragontooth
)

var (
	ErrUnknownBackend = errors.New("unknown rules backend")
	ErrIllegalMove    = errors.New("illegal move")
)

// Position is what the front ends need beyond engine.Position.
type Position interface {
	engine.Position
	FEN() string
}

// Backends lists the registered backend names.
func Backends() []string {
	return []string{Dragontooth, Goose, Notnil}
}

// New parses fen with the named backend.
func New(backend, fen string) (Position, error) {
	fen = strings.TrimSpace(fen)
	var (
		pos Position
		err error
	)
	switch strings.ToLower(backend) {
	case Dragontooth, "":
		pos, err = wrap(dragontooth.FromFEN(fen))
	case Goose:
		pos, err = wrap(goose.FromFEN(fen))
	case Notnil:
		pos, err = wrap(notnil.FromFEN(fen))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// wrap keeps a nil concrete pointer from turning into a non-nil Position.
func wrap[P Position](p P, err error) (Position, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Startpos returns the initial position for the named backend.
func Startpos(backend string) (Position, error) {
	return New(backend, StartFEN)
}

// FindMove returns the legal move of pos written as uci.
func FindMove(pos engine.Position, uci string) (engine.Move, error) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	for _, m := range pos.LegalMoves() {
		if m.String() == uci {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// Play applies a sequence of UCI moves to pos.
func Play(pos engine.Position, moves ...string) (engine.Position, error) {
	for _, uci := range moves {
		m, err := FindMove(pos, uci)
		if err != nil {
			return nil, err
		}
		pos = pos.Apply(m)
	}
	return pos, nil
}

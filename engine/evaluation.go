package engine

import (
	"errors"
	"fmt"
)

// EvalMode selects how terminal positions are scored.
type EvalMode uint8

const (
	// MaterialOnly scores every position, mated or not, by the material left
	// on the board.
	MaterialOnly EvalMode = iota
	// MateAware scores checkmate as a decisive result and stalemate/draw as
	// DrawScore. Ongoing positions are still scored by material.
	MateAware
)

var ErrUnknownMode = errors.New("unknown evaluation mode")

func (m EvalMode) String() string {
	switch m {
	case MaterialOnly:
		return "material"
	case MateAware:
		return "mate-aware"
	}
	return fmt.Sprintf("EvalMode(%d)", uint8(m))
}

// ParseEvalMode is the inverse of EvalMode.String.
func ParseEvalMode(s string) (EvalMode, error) {
	switch s {
	case "material", "":
		return MaterialOnly, nil
	case "mate-aware", "mate":
		return MateAware, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Evaluator is the static material evaluator. The weight table is fixed at
// construction.
type Evaluator struct {
	weights Weights
	mode    EvalMode
}

func NewEvaluator(weights Weights, mode EvalMode) (*Evaluator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if mode > MateAware {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	return &Evaluator{weights: weights, mode: mode}, nil
}

func (e *Evaluator) Weights() Weights { return e.weights }

func (e *Evaluator) Mode() EvalMode { return e.mode }

// Evaluate returns the score of pos without touching any cache.
func (e *Evaluator) Evaluate(pos Position) Score {
	if e.mode == MateAware {
		switch pos.Status() {
		case Checkmate:
			// The side to move is the one that got mated.
			if pos.SideToMove() == White {
				return -MateScore
			}
			return MateScore
		case Stalemate, Draw:
			return DrawScore
		}
	}
	return e.material(pos)
}

// EvaluateCached consults tt before evaluating and stores the result after.
// A material score depends on nothing but the position, so a hit is always
// valid regardless of the depth or window that produced it.
func (e *Evaluator) EvaluateCached(pos Position, tt *TransTable) Score {
	if tt == nil {
		return e.Evaluate(pos)
	}
	hash := pos.Hash()
	if score, ok := tt.Lookup(hash); ok {
		return score
	}
	score := e.Evaluate(pos)
	tt.Insert(hash, score)
	return score
}

func (e *Evaluator) material(pos Position) Score {
	var score Score
	for kind := PieceKind(0); kind < NPieceKinds; kind++ {
		w := e.weights[kind]
		score += Score(pos.PieceCount(kind, White)) * w
		score -= Score(pos.PieceCount(kind, Black)) * w
	}
	return score
}

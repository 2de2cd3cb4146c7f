package engine

import (
	"errors"
	"fmt"
	"math"
)

// Score is measured in material units from White's point of view.
type Score int32

const (
	MinScore Score = math.MinInt32
	MaxScore Score = math.MaxInt32

	DrawScore Score = 0
	// MateScore is only produced in MateAware mode. Validate keeps every
	// reachable material total below it.
	MateScore Score = 1_000_000
)

var ErrInvalidWeights = errors.New("invalid piece weights")

// Weights maps every piece kind to its material value.
type Weights [NPieceKinds]Score

// DefaultWeights is the classic 1/3/3/5/9 table. The king is priced far above
// everything else so that losing it dominates any material swing at the
// depths this engine searches.
var DefaultWeights = Weights{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   1000,
}

// maxNonKing is the most non-king pieces one side can own, promotions
// included.
const maxNonKing = 15

// Validate reports whether every weight is strictly positive and no side's
// material can reach MateScore.
func (w Weights) Validate() error {
	var top int64
	for kind, v := range w {
		if v <= 0 {
			return fmt.Errorf("%w: %s has weight %d", ErrInvalidWeights, PieceKind(kind), v)
		}
		if PieceKind(kind) != King {
			top = Max(top, int64(v))
		}
	}
	if bound := maxNonKing*top + int64(w[King]); bound >= int64(MateScore) {
		return fmt.Errorf("%w: material can reach %d, mate is %d", ErrInvalidWeights, bound, MateScore)
	}
	return nil
}

// Set returns a copy of the table with kind re-weighted.
func (w Weights) Set(kind PieceKind, v Score) Weights {
	w[kind] = v
	return w
}

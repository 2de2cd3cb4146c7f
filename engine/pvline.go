package engine

import "strings"

// PVLine is the principal variation below a node.
type PVLine struct {
	Moves []Move
}

func (pv *PVLine) Clear() {
	if pv != nil {
		pv.Moves = pv.Moves[:0]
	}
}

// Update makes move followed by child the new line.
func (pv *PVLine) Update(move Move, child PVLine) {
	if pv == nil {
		return
	}
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: append([]Move(nil), pv.Moves...)}
}

// GetPVMove returns the first move of the line, or nil.
func (pv PVLine) GetPVMove() Move {
	if len(pv.Moves) == 0 {
		return nil
	}
	return pv.Moves[0]
}

func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

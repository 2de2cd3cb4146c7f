package rules

import (
	"fmt"
	"strings"
	"unicode"
)

// Mirror returns the colour-mirrored FEN: the board flipped top to bottom
// with every piece changing colour, the other side to move, castling rights
// swapped and the en passant square reflected. The material evaluation of
// the result is the negation of the original's.
func Mirror(fen string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return "", fmt.Errorf("mirror: malformed FEN %q", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return "", fmt.Errorf("mirror: expected 8 ranks in %q", fields[0])
	}
	flipped := make([]string, 8)
	for i, rank := range ranks {
		flipped[7-i] = swapCase(rank)
	}
	fields[0] = strings.Join(flipped, "/")

	switch fields[1] {
	case "w":
		fields[1] = "b"
	case "b":
		fields[1] = "w"
	default:
		return "", fmt.Errorf("mirror: bad side to move %q", fields[1])
	}

	if fields[2] != "-" {
		var castle strings.Builder
		swapped := swapCase(fields[2])
		for _, r := range "KQkq" {
			if strings.ContainsRune(swapped, r) {
				castle.WriteRune(r)
			}
		}
		fields[2] = castle.String()
	}

	if ep := fields[3]; ep != "-" {
		if len(ep) != 2 || ep[1] < '1' || ep[1] > '8' {
			return "", fmt.Errorf("mirror: bad en passant square %q", ep)
		}
		fields[3] = string([]byte{ep[0], '1' + '8' - ep[1]})
	}
	return strings.Join(fields, " "), nil
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned when parsing user tokens.
var (
	ErrUnknownMove = errors.New("unknown move")
	ErrUnknownSide = errors.New("unknown side")
)

// Move names a cell both by index and by its single-bit mask.
type Move struct {
	Index int
	Mask  uint16
}

var labels = [9]string{
	"A1", "B1", "C1",
	"A2", "B2", "C2",
	"A3", "B3", "C3",
}

// MoveAt returns the move for cell index i (0..8).
func MoveAt(i int) Move {
	return Move{Index: i, Mask: uint16(1) << uint(i)}
}

// Label returns the two-character name of cell i.
func Label(i int) string {
	if i < 0 || i >= len(labels) {
		return "??"
	}
	return labels[i]
}

// LabelIndex maps a label like "B2" to its cell index.
func LabelIndex(label string) (int, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	for i, l := range labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// ParseMove converts a label to a Move.
func ParseMove(label string) (Move, error) {
	i, ok := LabelIndex(label)
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, label)
	}
	return MoveAt(i), nil
}

func (m Move) String() string { return Label(m.Index) }

// ListMoves enumerates the cells set in available in ascending index order.
// The search tie-break depends on this order.
func ListMoves(available uint16) []Move {
	moves := make([]Move, 0, 9)
	for i := 0; i < 9; i++ {
		mv := MoveAt(i)
		if available&mv.Mask == mv.Mask {
			moves = append(moves, mv)
		}
	}
	return moves
}

// ParseSide accepts "O", "X" or "off" (NoSide).
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "O":
		return Noughts, nil
	case "X":
		return Crosses, nil
	case "OFF":
		return NoSide, nil
	}
	return NoSide, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

package bitcube

import (
	"fmt"
	"strings"
)

// Side names one of the six faces of the cube, in net order.
type Side int

const (
	SideU Side = iota // Up (top)
	SideL             // Left
	SideF             // Front
	SideR             // Right
	SideB             // Back
	SideD             // Down (bottom)

	numSides = 6
)

// Sides lists every side in net order.
var Sides = [numSides]Side{SideU, SideL, SideF, SideR, SideB, SideD}

// Valid reports whether s is one of the six sides.
func (s Side) Valid() bool {
	return s >= SideU && s <= SideD
}

func (s Side) String() string {
	switch s {
	case SideU:
		return "U"
	case SideL:
		return "L"
	case SideF:
		return "F"
	case SideR:
		return "R"
	case SideB:
		return "B"
	case SideD:
		return "D"
	default:
		return "?"
	}
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Valid reports whether t is CW, CCW or Double.
func (t Turn) Valid() bool {
	return t == CW || t == CCW || t == Double
}

// Move is a single face turn.
type Move struct {
	Side Side // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Side.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	var side Side
	switch s[0] {
	case 'U', 'u':
		side = SideU
	case 'L', 'l':
		side = SideL
	case 'F', 'f':
		side = SideF
	case 'R', 'r':
		side = SideR
	case 'B', 'b':
		side = SideB
	case 'D', 'd':
		side = SideD
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	switch s[1:] {
	case "":
	case "'", "`":
		turn = CCW
	case "2", "2'", "2`":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Side: side, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// Simplify merges adjacent turns of the same side and drops those that
// cancel out: R R becomes R2, R2 R becomes R', R R' disappears. The
// result has the same effect as moves.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Side == m.Side {
			quarter := normalizeQuarters(int(out[n-1].Turn) + int(m.Turn))
			if quarter == 0 {
				out = out[:n-1]
			} else {
				out[n-1].Turn = quarter
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// normalizeQuarters maps a sum of quarter turns to -1, 0, 1 or 2.
func normalizeQuarters(q int) Turn {
	q = ((q % 4) + 4) % 4
	if q == 3 {
		return CCW
	}
	return Turn(q)
}

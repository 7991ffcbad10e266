package board

import "fmt"

// Side identifies one of the two players. Black moves first.
type Side uint8

const (
	Black Side = iota
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

// String returns "black" or "white".
func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Move identifies a board cell by row and column, both in 0..7.
type Move struct {
	Row, Col int
}

// NoMove is the sentinel returned when a side has no legal move and must pass.
var NoMove = Move{-1, -1}

// Index returns the linear cell index (row*8 + col).
func (m Move) Index() int {
	return m.Row*Size + m.Col
}

// InBounds reports whether the move names a cell on the board.
func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// String returns the move in algebraic form ("a1".."h8"), or "pass" for NoMove.
func (m Move) String() string {
	if m == NoMove {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(m.Col), m.Row+1)
}

// ParseMove parses a move in algebraic form ("a1".."h8").
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	m := Move{Row: row, Col: col}
	if !m.InBounds() {
		return NoMove, fmt.Errorf("move out of bounds: %q", s)
	}
	return m, nil
}

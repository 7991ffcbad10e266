package board

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board edge length.
const Size = 8

// Cells is the total number of board cells.
const Cells = Size * Size

// ErrIllegalMove is returned by Apply when the move does not flip any disc.
var ErrIllegalMove = errors.New("illegal move")

type cell uint8

const (
	empty cell = iota
	blackDisc
	whiteDisc
)

func discFor(s Side) cell {
	if s == Black {
		return blackDisc
	}
	return whiteDisc
}

// Position is an Othello board state. It is a value type: Apply returns a new
// Position and never mutates the receiver, so callers may freely keep copies
// for backtracking.
type Position struct {
	cells [Cells]cell
}

// The eight flip directions as (row, col) deltas.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Initial returns the standard Othello starting position.
func Initial() Position {
	var p Position
	p.cells[3*Size+3] = whiteDisc
	p.cells[3*Size+4] = blackDisc
	p.cells[4*Size+3] = blackDisc
	p.cells[4*Size+4] = whiteDisc
	return p
}

// Count returns the number of discs the given side has on the board.
func (p Position) Count(s Side) int {
	d := discFor(s)
	n := 0
	for _, c := range p.cells {
		if c == d {
			n++
		}
	}
	return n
}

// Empties returns the number of unoccupied cells.
func (p Position) Empties() int {
	n := 0
	for _, c := range p.cells {
		if c == empty {
			n++
		}
	}
	return n
}

// flipsInDirection returns how many opponent discs would flip from m in the
// given direction, or 0 if the run is not bracketed by an own disc.
func (p Position) flipsInDirection(s Side, m Move, dr, dc int) int {
	own := discFor(s)
	opp := discFor(s.Opponent())
	n := 0
	r, c := m.Row+dr, m.Col+dc
	for r >= 0 && r < Size && c >= 0 && c < Size {
		switch p.cells[r*Size+c] {
		case opp:
			n++
		case own:
			return n
		default:
			return 0
		}
		r += dr
		c += dc
	}
	return 0
}

// IsLegal reports whether the move is legal for the given side.
func (p Position) IsLegal(s Side, m Move) bool {
	if !m.InBounds() || p.cells[m.Index()] != empty {
		return false
	}
	for _, d := range directions {
		if p.flipsInDirection(s, m, d[0], d[1]) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns all legal moves for the given side in row-major order.
func (p Position) LegalMoves(s Side) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			m := Move{Row: r, Col: c}
			if p.cells[m.Index()] != empty {
				continue
			}
			if p.IsLegal(s, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasLegalMove reports whether the side has at least one legal move.
func (p Position) HasLegalMove(s Side) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.IsLegal(s, Move{Row: r, Col: c}) {
				return true
			}
		}
	}
	return false
}

// Apply plays the move for the given side and returns the resulting position.
// The receiver is left unchanged. Returns ErrIllegalMove if the move flips
// nothing.
func (p Position) Apply(s Side, m Move) (Position, error) {
	if !m.InBounds() || p.cells[m.Index()] != empty {
		return p, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, s)
	}
	flipped := false
	next := p
	for _, d := range directions {
		n := p.flipsInDirection(s, m, d[0], d[1])
		if n == 0 {
			continue
		}
		flipped = true
		r, c := m.Row, m.Col
		for i := 0; i < n; i++ {
			r += d[0]
			c += d[1]
			next.cells[r*Size+c] = discFor(s)
		}
	}
	if !flipped {
		return p, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, s)
	}
	next.cells[m.Index()] = discFor(s)
	return next, nil
}

// GameOver reports whether neither side has a legal move.
func (p Position) GameOver() bool {
	return !p.HasLegalMove(Black) && !p.HasLegalMove(White)
}

// String renders the board as an 8-line diagram: 'X' black, 'O' white,
// '.' empty, row 1 first.
func (p Position) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch p.cells[r*Size+c] {
			case blackDisc:
				sb.WriteByte('X')
			case whiteDisc:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Parse reads a position from the diagram format produced by String.
// Whitespace-only lines are skipped, so diagrams may be written as indented
// raw strings in tests.
func Parse(diagram string) (Position, error) {
	var p Position
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != Size {
		return p, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return p, fmt.Errorf("row %d: expected %d cells, got %d", r+1, Size, len(row))
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case 'X', 'B':
				p.cells[r*Size+c] = blackDisc
			case 'O', 'W':
				p.cells[r*Size+c] = whiteDisc
			case '.', '-':
				// empty
			default:
				return p, fmt.Errorf("row %d: unknown cell %q", r+1, row[c])
			}
		}
	}
	return p, nil
}

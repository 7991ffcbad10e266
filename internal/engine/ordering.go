package engine

import (
	"sort"

	"othelloplay/internal/board"
)

// Move ordering priorities. Corners dominate everything; X- and C-squares are
// heavily discouraged while the corners next to them are still up for grabs.
const (
	cornerBonus      = 100000
	xSquarePenalty   = -50000
	cSquarePenalty   = -20000
	edgeBonus        = 5000
	applyFailPenalty = -100000

	// X/C avoidance only applies while the game is open enough that gifting
	// a corner is the main risk.
	hazardEmptyThreshold = 30
)

// IsCorner reports whether the move is a board corner.
func IsCorner(m board.Move) bool {
	return (m.Row == 0 || m.Row == board.Size-1) && (m.Col == 0 || m.Col == board.Size-1)
}

// IsXSquare reports whether the move is diagonally adjacent to a corner.
func IsXSquare(m board.Move) bool {
	return (m.Row == 1 || m.Row == board.Size-2) && (m.Col == 1 || m.Col == board.Size-2)
}

// IsCSquare reports whether the move is orthogonally adjacent to a corner.
func IsCSquare(m board.Move) bool {
	onEdgeRow := m.Row == 0 || m.Row == board.Size-1
	onEdgeCol := m.Col == 0 || m.Col == board.Size-1
	return (onEdgeRow && (m.Col == 1 || m.Col == board.Size-2)) ||
		(onEdgeCol && (m.Row == 1 || m.Row == board.Size-2))
}

// IsEdge reports whether the move is on the board edge.
func IsEdge(m board.Move) bool {
	return m.Row == 0 || m.Row == board.Size-1 || m.Col == 0 || m.Col == board.Size-1
}

// scoreMove returns the ordering score for a single candidate; higher scores
// are searched first.
func scoreMove(pos board.Position, side board.Side, m board.Move, empty int) int {
	score := 0

	switch {
	case IsCorner(m):
		score += cornerBonus
	case IsXSquare(m) && empty > hazardEmptyThreshold:
		score += xSquarePenalty
	case IsCSquare(m) && empty > hazardEmptyThreshold:
		score += cSquarePenalty
	case IsEdge(m):
		score += edgeBonus
	default:
		score += positionWeights[m.Row][m.Col] * 100
	}

	// One-ply lookahead: prefer moves that leave the opponent few replies.
	next, err := pos.Apply(side, m)
	if err != nil {
		// An already-legal move should not fail to apply; rank it last
		// rather than dropping it or propagating the failure.
		return score + applyFailPenalty
	}
	score -= len(next.LegalMoves(side.Opponent())) * 50

	return score
}

// OrderMoves returns the candidates reordered for maximum pruning efficiency.
// The result is a permutation of the input; the input slice is not modified.
// Ties keep their input order (stable sort) so ordering is deterministic.
func OrderMoves(moves []board.Move, pos board.Position, side board.Side) []board.Move {
	if len(moves) <= 1 {
		return moves
	}

	empty := pos.Empties()
	type scoredMove struct {
		move  board.Move
		score int
	}
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(pos, side, m, empty)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]board.Move, len(moves))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

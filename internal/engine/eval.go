package engine

import "othelloplay/internal/board"

// Weights are the phase-dependent evaluation coefficients. Within each phase
// band they sum to approximately 1.0.
type Weights struct {
	Position  float64
	Mobility  float64
	Corner    float64
	Stability float64
	Parity    float64
}

// Phase bands by empty-cell count. Piece count is nearly meaningless in the
// opening but decisive in the endgame; mobility and positional control matter
// most early.
var (
	openingWeights = Weights{Position: 0.40, Mobility: 0.35, Corner: 0.15, Stability: 0.10, Parity: 0.00}
	midgameWeights = Weights{Position: 0.25, Mobility: 0.25, Corner: 0.20, Stability: 0.20, Parity: 0.10}
	endgameWeights = Weights{Position: 0.10, Mobility: 0.05, Corner: 0.15, Stability: 0.20, Parity: 0.50}
)

// WeightsFor selects the evaluation weights for the given empty-cell count.
func WeightsFor(empty int) Weights {
	switch {
	case empty > 48:
		return openingWeights
	case empty > 20:
		return midgameWeights
	default:
		return endgameWeights
	}
}

// Standard Othello position weights matrix.
// Corners (100) > edges (10) > center (low) > X-squares (-50).
var positionWeights = [board.Size][board.Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 1, 0, 0, 1, -2, 10},
	{5, -2, 0, -1, -1, 0, -2, 5},
	{5, -2, 0, -1, -1, 0, -2, 5},
	{10, -2, 1, 0, 0, 1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

var cornerCells = [4]board.Move{{Row: 0, Col: 0}, {Row: 0, Col: 7}, {Row: 7, Col: 0}, {Row: 7, Col: 7}}

// evaluateCorners estimates corner control. The evaluator has no direct cell
// occupancy query, so a corner counts as occupied when neither side can play
// it, and ownership is guessed from which side has fewer legal moves adjacent
// to it: the side already sitting on the corner tends to have nothing left to
// play nearby.
func evaluateCorners(pos board.Position, perspective board.Side) int {
	opp := perspective.Opponent()
	myMoves := pos.LegalMoves(perspective)
	oppMoves := pos.LegalMoves(opp)

	score := 0
	for _, corner := range cornerCells {
		if pos.IsLegal(perspective, corner) || pos.IsLegal(opp, corner) {
			continue // still playable, no owner yet
		}
		myNear, oppNear := 0, 0
		for _, m := range myMoves {
			if chebyshev(m, corner) <= 1 {
				myNear++
			}
		}
		for _, m := range oppMoves {
			if chebyshev(m, corner) <= 1 {
				oppNear++
			}
		}
		if myNear < oppNear {
			score += 100
		} else if oppNear < myNear {
			score -= 100
		}
	}
	return score
}

func chebyshev(a, b board.Move) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// evaluatePositional scores reachable cells against the weight matrix, a
// proxy for board control.
func evaluatePositional(myMoves, oppMoves []board.Move) int {
	score := 0
	for _, m := range myMoves {
		score += positionWeights[m.Row][m.Col]
	}
	for _, m := range oppMoves {
		score -= positionWeights[m.Row][m.Col]
	}
	return score
}

// evaluateStability combines corner control with safe-edge mobility. Edge
// moves adjacent to a corner are excluded: those are liabilities, not
// stable territory.
func evaluateStability(pos board.Position, perspective board.Side) int {
	score := evaluateCorners(pos, perspective)

	myMoves := pos.LegalMoves(perspective)
	oppMoves := pos.LegalMoves(perspective.Opponent())

	myEdges, oppEdges := 0, 0
	for _, m := range myMoves {
		if IsEdge(m) && !IsXSquare(m) && !IsCSquare(m) {
			myEdges++
		}
	}
	for _, m := range oppMoves {
		if IsEdge(m) && !IsXSquare(m) && !IsCSquare(m) {
			oppEdges++
		}
	}
	return score + (myEdges-oppEdges)*5
}

// Evaluate scores the position from the perspective side's point of view;
// positive favors the perspective. It is a pure function of its inputs and
// applies the same formula to terminal positions as to ongoing ones.
func Evaluate(pos board.Position, perspective board.Side) int {
	empty := board.Cells - pos.Count(board.Black) - pos.Count(board.White)
	w := WeightsFor(empty)

	sign := 1
	if perspective != board.Black {
		sign = -1
	}
	material := (pos.Count(board.Black) - pos.Count(board.White)) * sign

	myMoves := pos.LegalMoves(perspective)
	oppMoves := pos.LegalMoves(perspective.Opponent())
	mobility := len(myMoves) - len(oppMoves)

	positional := evaluatePositional(myMoves, oppMoves)
	corners := evaluateCorners(pos, perspective)
	stability := evaluateStability(pos, perspective)

	// Truncation toward zero on the final cast is part of the contract.
	return int(w.Position*float64(positional) +
		w.Mobility*float64(mobility)*5 +
		w.Corner*float64(corners) +
		w.Stability*float64(stability) +
		w.Parity*float64(material))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

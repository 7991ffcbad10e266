package engine

import "othelloplay/internal/board"

// Infinity exceeds any realistic evaluation magnitude and serves as the
// alpha-beta sentinel bound.
const Infinity = 1000000

// searchContext holds all mutable state for one move-selection call: the
// transposition cache, the deadline, and the node counter. Passing it down
// the recursion keeps concurrent selection calls on separate Engine values
// safe by construction.
type searchContext struct {
	tt    *TranspositionTable
	tm    *TimeManager
	nodes uint64
}

// alphaBeta searches the position to the given depth and returns its score
// from the fixed perspective side. The perspective never flips during the
// recursion; only toMove alternates, and the node maximizes when
// toMove == perspective.
//
// Past the deadline it returns the static evaluation so the unwinding search
// still yields a usable score instead of an error.
func (sc *searchContext) alphaBeta(pos board.Position, toMove board.Side, depth, alpha, beta int, perspective board.Side) int {
	if sc.tm.TimeUp() {
		return Evaluate(pos, perspective)
	}

	sc.nodes++

	myMoves := pos.LegalMoves(toMove)
	oppMoves := pos.LegalMoves(toMove.Opponent())

	gameOver := len(myMoves) == 0 && len(oppMoves) == 0
	if depth == 0 || gameOver {
		return Evaluate(pos, perspective)
	}

	// Forced pass: no decision was made, so depth is not consumed.
	if len(myMoves) == 0 {
		return sc.alphaBeta(pos, toMove.Opponent(), depth, alpha, beta, perspective)
	}

	myMoves = OrderMoves(myMoves, pos, toMove)

	// A cached best move from a deep-enough earlier visit is promoted past
	// the heuristic ordering to the front. The cached score never
	// short-circuits this node: pruning quality comes from ordering, not
	// from skipping work.
	key := Fingerprint(pos)
	if entry, ok := sc.tt.Probe(key); ok && entry.Usable(key, depth) {
		for i, m := range myMoves {
			if m == entry.BestMove {
				copy(myMoves[1:i+1], myMoves[:i])
				myMoves[0] = entry.BestMove
				break
			}
		}
	}

	maximizing := toMove == perspective
	bestValue := Infinity
	if maximizing {
		bestValue = -Infinity
	}
	bestMove := myMoves[0]

	for _, m := range myMoves {
		if sc.tm.TimeUp() {
			break
		}

		next, err := pos.Apply(toMove, m)
		if err != nil {
			// Skip the candidate; one bad apply must not abort the search.
			continue
		}

		value := sc.alphaBeta(next, toMove.Opponent(), depth-1, alpha, beta, perspective)

		if maximizing {
			if value > bestValue {
				bestValue = value
				bestMove = m
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if value < bestValue {
				bestValue = value
				bestMove = m
			}
			if value < beta {
				beta = value
			}
		}

		if beta <= alpha {
			break
		}
	}

	// A result cut short by the deadline is not worth caching.
	if !sc.tm.TimeUp() {
		sc.tt.Store(key, depth, bestValue, bestMove)
	}

	return bestValue
}

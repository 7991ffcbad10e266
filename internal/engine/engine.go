package engine

import (
	"time"

	"othelloplay/internal/board"
)

// Default search parameters. The time budget is deliberately conservative,
// leaving headroom below any externally imposed hard limit.
const (
	DefaultBudget = 1750 * time.Millisecond
	MaxDepth      = 20
)

// SearchInfo describes one completed deepening iteration.
type SearchInfo struct {
	Depth        int
	Score        int
	BestMove     board.Move
	Nodes        uint64
	Time         time.Duration
	CacheEntries int
}

// Engine selects moves for one side of an Othello game. It is an anytime
// searcher: it always returns a legal move before its deadline, with quality
// improving with available time.
//
// An Engine must not be used for concurrent selections; run one Engine per
// in-flight game instead.
type Engine struct {
	budget   time.Duration
	maxDepth int

	tt *TranspositionTable
	tm *TimeManager

	nodes uint64

	// OnInfo, if set, is called after every completed deepening iteration.
	OnInfo func(SearchInfo)
}

// NewEngine creates an engine with the given time budget per move. A zero or
// negative budget selects DefaultBudget.
func NewEngine(budget time.Duration) *Engine {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Engine{
		budget:   budget,
		maxDepth: MaxDepth,
		tt:       NewTranspositionTable(),
		tm:       NewTimeManager(),
	}
}

// Budget returns the per-move time budget.
func (e *Engine) Budget() time.Duration {
	return e.budget
}

// Nodes returns the number of nodes searched by the last SelectMove call.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// DepthFor returns the maximum search depth for the given empty-cell count.
// With 12 or fewer empties the game is searched to exact completion.
func DepthFor(empty int) int {
	var depth int
	switch {
	case empty <= 12:
		depth = empty
	case empty <= 20:
		depth = 10
	case empty <= 40:
		depth = 8
	default:
		depth = 6
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	return depth
}

// SelectMove returns the best move found for the side to move within the
// time budget, or board.NoMove when the side has no legal move and must
// pass. It never returns a non-move while a legal move exists.
func (e *Engine) SelectMove(pos board.Position, side board.Side) board.Move {
	e.tm.Start(e.budget)
	e.tt.Clear()
	e.nodes = 0

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return board.NoMove
	}
	if len(moves) == 1 {
		return moves[0]
	}

	best := e.rootSearch(pos, side, DepthFor(pos.Empties()))

	// Post-search sanity check. An illegal result would mean internal
	// inconsistency; fall back to any legal move rather than surface it.
	if !pos.IsLegal(side, best) {
		return moves[0]
	}
	return best
}

// rootSearch runs iterative deepening over the root move list. Depth grows
// in even increments, trading granularity for speed. An iteration's best
// move is adopted only if the iteration completed before the deadline:
// partial results are not comparable against moves not yet tried at that
// depth.
func (e *Engine) rootSearch(pos board.Position, side board.Side, maxDepth int) board.Move {
	sc := &searchContext{tt: e.tt, tm: e.tm}
	defer func() { e.nodes = sc.nodes }()

	moves := OrderMoves(pos.LegalMoves(side), pos, side)
	bestMove := moves[0]

	for depth := 2; depth <= maxDepth; depth += 2 {
		if sc.tm.TimeUp() {
			break
		}

		iterBest := bestMove
		iterScore := -Infinity

		for _, m := range moves {
			if sc.tm.TimeUp() {
				break
			}
			next, err := pos.Apply(side, m)
			if err != nil {
				continue
			}
			score := sc.alphaBeta(next, side.Opponent(), depth-1, -Infinity, Infinity, side)
			if score > iterScore {
				iterScore = score
				iterBest = m
			}
		}

		if sc.tm.TimeUp() {
			break
		}
		bestMove = iterBest

		// Front-load the winner to speed up the next, deeper iteration.
		for i, m := range moves {
			if m == bestMove {
				copy(moves[1:i+1], moves[:i])
				moves[0] = bestMove
				break
			}
		}

		if e.OnInfo != nil {
			e.OnInfo(SearchInfo{
				Depth:        depth,
				Score:        iterScore,
				BestMove:     bestMove,
				Nodes:        sc.nodes,
				Time:         sc.tm.Elapsed(),
				CacheEntries: e.tt.Len(),
			})
		}
	}

	return bestMove
}

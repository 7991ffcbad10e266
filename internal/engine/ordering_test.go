package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"othelloplay/internal/board"
)

func TestMoveClassification(t *testing.T) {
	corners := []board.Move{{Row: 0, Col: 0}, {Row: 0, Col: 7}, {Row: 7, Col: 0}, {Row: 7, Col: 7}}
	for _, m := range corners {
		assert.True(t, IsCorner(m), "%s should be a corner", m)
		assert.True(t, IsEdge(m), "%s should be on the edge", m)
	}

	xSquares := []board.Move{{Row: 1, Col: 1}, {Row: 1, Col: 6}, {Row: 6, Col: 1}, {Row: 6, Col: 6}}
	for _, m := range xSquares {
		assert.True(t, IsXSquare(m), "%s should be an X-square", m)
		assert.False(t, IsCorner(m))
		assert.False(t, IsEdge(m))
	}

	cSquares := []board.Move{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 6}, {Row: 1, Col: 7}, {Row: 6, Col: 0}, {Row: 7, Col: 1}, {Row: 6, Col: 7}, {Row: 7, Col: 6}}
	for _, m := range cSquares {
		assert.True(t, IsCSquare(m), "%s should be a C-square", m)
		assert.False(t, IsCorner(m))
	}

	assert.False(t, IsCorner(board.Move{Row: 3, Col: 3}))
	assert.False(t, IsXSquare(board.Move{Row: 3, Col: 3}))
	assert.False(t, IsCSquare(board.Move{Row: 3, Col: 3}))
	assert.False(t, IsEdge(board.Move{Row: 3, Col: 3}))
	assert.True(t, IsEdge(board.Move{Row: 0, Col: 3}))
}

func TestOrderMovesIsPermutation(t *testing.T) {
	p := board.Initial()
	moves := p.LegalMoves(board.Black)
	ordered := OrderMoves(moves, p, board.Black)

	require.Len(t, ordered, len(moves))
	seen := make(map[board.Move]bool)
	for _, m := range ordered {
		assert.False(t, seen[m], "duplicate move %s in ordering", m)
		seen[m] = true
	}
	for _, m := range moves {
		assert.True(t, seen[m], "move %s dropped by ordering", m)
	}
}

func TestOrderMovesSingleCandidateUnchanged(t *testing.T) {
	p := board.Initial()
	moves := []board.Move{{Row: 2, Col: 3}}
	ordered := OrderMoves(moves, p, board.Black)
	require.Len(t, ordered, 1)
	assert.Equal(t, moves[0], ordered[0])
}

func TestOrderMovesCornerFirst(t *testing.T) {
	// Black can take the a1 corner; it must be tried before anything else,
	// regardless of how many replies it leaves the opponent.
	p, err := board.Parse(`
		.OX.....
		.O......
		.X......
		...XO...
		...OX...
		........
		........
		........`)
	require.NoError(t, err)

	moves := p.LegalMoves(board.Black)
	corner := board.Move{Row: 0, Col: 0}
	require.Contains(t, moves, corner)
	require.Greater(t, len(moves), 1)

	ordered := OrderMoves(moves, p, board.Black)
	assert.Equal(t, corner, ordered[0], "corner must be explored first")
}

func TestOrderMovesXSquareLastEarly(t *testing.T) {
	// Early game (empty > 30): an X-square candidate must sort behind every
	// non-hazard candidate.
	p, err := board.Parse(`
		........
		........
		..XX....
		..XO....
		........
		........
		........
		........`)
	require.NoError(t, err)
	require.Greater(t, p.Empties(), 30)

	moves := p.LegalMoves(board.White)
	xSquare := board.Move{Row: 1, Col: 1}
	require.Contains(t, moves, xSquare)
	require.Greater(t, len(moves), 1)

	ordered := OrderMoves(moves, p, board.White)
	assert.Equal(t, xSquare, ordered[len(ordered)-1], "X-square must be explored last in the opening")
}

func TestOrderMovesDeterministic(t *testing.T) {
	p := board.Initial()
	moves := p.LegalMoves(board.Black)
	first := OrderMoves(moves, p, board.Black)
	second := OrderMoves(moves, p, board.Black)
	assert.Equal(t, first, second)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"othelloplay/internal/board"
)

func TestTranspositionStoreProbe(t *testing.T) {
	tt := NewTranspositionTable()
	m := board.Move{Row: 2, Col: 3}

	_, ok := tt.Probe(42)
	assert.False(t, ok, "probe of empty table must miss")

	tt.Store(42, 6, 150, m)
	entry, ok := tt.Probe(42)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), entry.Key)
	assert.Equal(t, 6, entry.Depth)
	assert.Equal(t, 150, entry.Score)
	assert.Equal(t, m, entry.BestMove)
	assert.Equal(t, 1, tt.Len())
}

func TestTranspositionLastWriteWins(t *testing.T) {
	tt := NewTranspositionTable()
	deep := board.Move{Row: 0, Col: 0}
	shallow := board.Move{Row: 5, Col: 5}

	tt.Store(7, 10, 500, deep)
	tt.Store(7, 2, -30, shallow)

	entry, ok := tt.Probe(7)
	assert.True(t, ok)
	assert.Equal(t, 2, entry.Depth, "a later shallow store overwrites a deeper one")
	assert.Equal(t, shallow, entry.BestMove)
	assert.Equal(t, 1, tt.Len())
}

func TestTTEntryUsable(t *testing.T) {
	entry := TTEntry{Key: 100, Depth: 6, Score: 40, BestMove: board.Move{Row: 1, Col: 2}}

	assert.True(t, entry.Usable(100, 6))
	assert.True(t, entry.Usable(100, 4), "deeper entries cover shallower queries")
	assert.False(t, entry.Usable(100, 8), "shallow entries must not answer deeper queries")

	// A colliding or stale entry whose stored key differs from the query
	// must never be trusted, whatever its depth.
	assert.False(t, entry.Usable(101, 4))
	assert.False(t, entry.Usable(0, 0))
}

func TestTranspositionClear(t *testing.T) {
	tt := NewTranspositionTable()
	for i := uint64(0); i < 100; i++ {
		tt.Store(i, 4, int(i), board.Move{Row: 3, Col: 3})
	}
	assert.Equal(t, 100, tt.Len())

	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	_, ok := tt.Probe(10)
	assert.False(t, ok)
}

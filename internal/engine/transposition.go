package engine

import "othelloplay/internal/board"

// TTEntry is a cached search result for one fingerprint.
type TTEntry struct {
	Key      uint64     // Full fingerprint for verification
	Depth    int        // Search depth the score was computed at
	Score    int        // Best score found
	BestMove board.Move // Best move found
}

// Usable reports whether the entry may inform a query for the given
// fingerprint at the given depth: the stored key must match exactly (defense
// against silent collisions) and the stored depth must cover the request.
func (e TTEntry) Usable(key uint64, depth int) bool {
	return e.Key == key && e.Depth >= depth
}

// TranspositionTable maps position fingerprints to search results. It grows
// unbounded within a single move-selection call and is cleared at the start of
// the next one, so entries never go stale across turns.
//
// Because fingerprints are approximate (see Fingerprint), a probe result is
// only usable after the caller confirms the stored key matches the query
// exactly and the entry depth covers the requested depth.
type TranspositionTable struct {
	entries map[uint64]TTEntry
}

// NewTranspositionTable creates an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[uint64]TTEntry)}
}

// Probe looks up a fingerprint. The returned entry is valid only if ok is
// true and Key equals the probed fingerprint.
func (tt *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	entry, ok := tt.entries[key]
	return entry, ok
}

// Store saves a search result, unconditionally overwriting any prior entry
// for the fingerprint. Recency wins over depth.
func (tt *TranspositionTable) Store(key uint64, depth, score int, bestMove board.Move) {
	tt.entries[key] = TTEntry{Key: key, Depth: depth, Score: score, BestMove: bestMove}
}

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	clear(tt.entries)
}

// Len returns the number of stored entries.
func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}

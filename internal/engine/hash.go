package engine

import "othelloplay/internal/board"

// Position fingerprinting for the transposition cache.
//
// The fingerprint is an approximate digest: it hashes the two piece counts and
// the set of legal moves for each side, not the raw board occupancy. Distinct
// positions may therefore collide, which is why cache entries are re-verified
// against the stored key before use.

// Keys per cell, one channel per side plus a spare.
const hashChannels = 3

var hashKeys [board.Cells][hashChannels]uint64

func init() {
	initHashKeys()
}

// Simple PRNG for reproducible fingerprint keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initHashKeys() {
	rng := newPRNG(314159265) // Fixed seed
	for i := 0; i < board.Cells; i++ {
		for ch := 0; ch < hashChannels; ch++ {
			hashKeys[i][ch] = rng.next()
		}
	}
}

// Fingerprint returns the 64-bit digest of a position. It is deterministic for
// identical position content and enumerates legal moves exactly once per side.
func Fingerprint(pos board.Position) uint64 {
	var h uint64

	h ^= hashKeys[pos.Count(board.Black)%board.Cells][0]
	h ^= hashKeys[pos.Count(board.White)%board.Cells][1]

	for _, m := range pos.LegalMoves(board.Black) {
		h ^= hashKeys[m.Index()%board.Cells][0]
	}
	for _, m := range pos.LegalMoves(board.White) {
		h ^= hashKeys[m.Index()%board.Cells][1]
	}

	return h
}

package storage

import (
	"testing"
	"time"
)

func TestRecordAndStats(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	base := time.Now()
	results := []MatchResult{
		{PlayedAt: base, Winner: "black", BlackDiscs: 40, WhiteDiscs: 24, Plies: 60},
		{PlayedAt: base.Add(time.Second), Winner: "white", BlackDiscs: 20, WhiteDiscs: 44, Plies: 58},
		{PlayedAt: base.Add(2 * time.Second), Winner: "draw", BlackDiscs: 32, WhiteDiscs: 32, Plies: 60},
		{PlayedAt: base.Add(3 * time.Second), Winner: "black", BlackDiscs: 35, WhiteDiscs: 29, Plies: 61},
	}
	for _, r := range results {
		if err := store.RecordMatch(r); err != nil {
			t.Fatalf("RecordMatch: %v", err)
		}
	}

	matches, err := store.Matches()
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(matches) != len(results) {
		t.Fatalf("got %d matches, want %d", len(matches), len(results))
	}
	// Record order is preserved.
	for i, m := range matches {
		if m.Winner != results[i].Winner {
			t.Errorf("matches[%d].Winner = %s, want %s", i, m.Winner, results[i].Winner)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Games != 4 || stats.BlackWins != 2 || stats.WhiteWins != 1 || stats.Draws != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if got := stats.BlackWinRate(); got != 50 {
		t.Errorf("BlackWinRate = %.2f, want 50", got)
	}
}

func TestRecordMatchFillsTimestamp(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.RecordMatch(MatchResult{Winner: "draw"}); err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}

	matches, err := store.Matches()
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].PlayedAt.IsZero() {
		t.Error("PlayedAt should be filled in when zero")
	}
}

func TestStatsEmptyStore(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Games != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
	if stats.BlackWinRate() != 0 {
		t.Error("win rate of empty store should be 0")
	}
}

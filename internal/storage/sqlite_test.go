package storage

import (
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenEmpty(t *testing.T) {
	store := openTestStore(t)

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Fresh journal should be empty, got %d rounds", n)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRound(Round{SessionID: "s1", Difficulty: 1, Score: 10}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	if n, _ := b.Count(); n != 0 {
		t.Errorf("Second journal should not see rounds of the first, got %d", n)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)

	rounds := []Round{
		{SessionID: "a", Difficulty: 1, Score: 30, Length: 4, Ticks: 120, EndedAt: base},
		{SessionID: "a", Difficulty: 2, Score: 50, Length: 6, Ticks: 200, NewRecord: true, EndedAt: base.Add(time.Minute)},
		{SessionID: "b", Difficulty: 1, Score: 10, Length: 2, Ticks: 40, EndedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(recent))
	}

	// Newest first
	if recent[0].SessionID != "b" || recent[0].Score != 10 {
		t.Errorf("Expected newest round first, got %+v", recent[0])
	}
	got := recent[1]
	if got.Difficulty != 2 || got.Score != 50 || got.Length != 6 || got.Ticks != 200 || !got.NewRecord {
		t.Errorf("Round fields not preserved: %+v", got)
	}
	if !got.EndedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("EndedAt = %v, expected %v", got.EndedAt, base.Add(time.Minute))
	}
}

func TestStoreRecentDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < DefaultRecentLimit+5; i++ {
		if _, err := store.SaveRound(Round{SessionID: "s", Difficulty: 1, Score: i * 10}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds(0)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != DefaultRecentLimit {
		t.Errorf("Expected %d rounds, got %d", DefaultRecentLimit, len(recent))
	}
}

func TestStoreSaveRoundStampsTime(t *testing.T) {
	store := openTestStore(t)

	before := time.Now()
	if _, err := store.SaveRound(Round{SessionID: "s", Difficulty: 1}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	recent, _ := store.RecentRounds(1)
	if len(recent) != 1 || recent[0].EndedAt.Before(before) {
		t.Errorf("Expected EndedAt to be stamped, got %+v", recent)
	}
}

func TestStoreRejectsMissingSession(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(Round{Difficulty: 1, Score: 10}); err == nil {
		t.Error("Expected error for round without session id")
	}
}

func TestStoreBestByDifficulty(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Round{
		{SessionID: "a", Difficulty: 1, Score: 30},
		{SessionID: "b", Difficulty: 1, Score: 70},
		{SessionID: "a", Difficulty: 3, Score: 20},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	best, err := store.BestByDifficulty()
	if err != nil {
		t.Fatalf("BestByDifficulty() failed: %v", err)
	}

	if best[1] != 70 || best[3] != 20 {
		t.Errorf("BestByDifficulty() = %v", best)
	}
	if _, ok := best[2]; ok {
		t.Error("Level without rounds should be absent")
	}
}

func TestStoreSessionRounds(t *testing.T) {
	store := openTestStore(t)
	mine, other := NewSessionID(), NewSessionID()
	if mine == other {
		t.Fatal("Session ids should be unique")
	}

	for _, r := range []Round{
		{SessionID: mine, Difficulty: 1, Score: 10},
		{SessionID: other, Difficulty: 1, Score: 20},
		{SessionID: mine, Difficulty: 2, Score: 30},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.SessionRounds(mine)
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(rounds) != 2 || rounds[0].Score != 10 || rounds[1].Score != 30 {
		t.Errorf("SessionRounds() = %+v", rounds)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.SaveRound(Round{SessionID: NewSessionID(), Difficulty: 1, Score: i}); err != nil {
				t.Errorf("SaveRound() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if n, _ := store.Count(); n != 8 {
		t.Errorf("Expected 8 rounds, got %d", n)
	}
}

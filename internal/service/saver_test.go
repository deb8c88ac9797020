package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

func waitForSaves(t *testing.T, mr *mockRepo, username string, want int) [][]byte {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mr.mu.Lock()
		saves := mr.saves[username]
		mr.mu.Unlock()
		if len(saves) >= want {
			return saves
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d saves", want)
	return nil
}

func TestSaver_CoalescesRapidSchedules(t *testing.T) {
	mr := newMockRepo()
	s := NewSaver(mr, 30*time.Millisecond)
	p := game.NewPlayer("joy")

	p.Gold = 100
	s.Schedule("joy", p)
	p.Gold = 200
	s.Schedule("joy", p)
	p.Gold = 300
	s.Schedule("joy", p)

	saves := waitForSaves(t, mr, "joy", 1)
	if len(saves) != 1 {
		t.Fatalf("expected one coalesced write, got %d", len(saves))
	}
	var stored game.Player
	if err := json.Unmarshal(saves[0], &stored); err != nil {
		t.Fatalf("stored blob is not a player: %v", err)
	}
	if stored.Gold != 300 {
		t.Fatalf("expected the latest snapshot written, got gold %d", stored.Gold)
	}
}

func TestSaver_SnapshotTakenAtScheduleTime(t *testing.T) {
	mr := newMockRepo()
	s := NewSaver(mr, 20*time.Millisecond)
	p := game.NewPlayer("joy")

	p.Gold = 77
	s.Schedule("joy", p)
	p.Gold = 9999 // mutation after scheduling must not leak into the write

	saves := waitForSaves(t, mr, "joy", 1)
	var stored game.Player
	if err := json.Unmarshal(saves[0], &stored); err != nil {
		t.Fatalf("stored blob is not a player: %v", err)
	}
	if stored.Gold != 77 {
		t.Fatalf("expected the snapshot from schedule time, got gold %d", stored.Gold)
	}
}

func TestSaver_SaveNowSupersedesPending(t *testing.T) {
	mr := newMockRepo()
	s := NewSaver(mr, 50*time.Millisecond)
	p := game.NewPlayer("joy")

	s.Schedule("joy", p)
	if err := s.SaveNow("joy", p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(120 * time.Millisecond)
	mr.mu.Lock()
	n := len(mr.saves["joy"])
	mr.mu.Unlock()
	if n != 1 {
		t.Fatalf("expected exactly one write after SaveNow, got %d", n)
	}
}

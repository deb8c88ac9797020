package service

import (
	"context"
	"testing"

	"github.com/PranzNi/RPG-NURSE/internal/contentgen"
	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// stubProvider serves fallback content and records requested levels.
type stubProvider struct {
	monsterLevels  []int
	questionTopics []string
}

func (s *stubProvider) GenerateMonster(ctx context.Context, level int, topic string) (*game.Monster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.monsterLevels = append(s.monsterLevels, level)
	return contentgen.FallbackMonster(level), nil
}

func (s *stubProvider) GenerateQuestion(ctx context.Context, level int, topic string) (*game.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.questionTopics = append(s.questionTopics, topic)
	return contentgen.FallbackQuestion(topic), nil
}

func testSession(name string) *Session {
	return &Session{Username: name, Player: game.NewPlayer(name)}
}

func firstDungeon(t *testing.T) *game.Dungeon {
	t.Helper()
	d := game.DefaultCatalog().DungeonByID("foundation")
	if d == nil {
		t.Fatalf("catalog missing foundation dungeon")
	}
	return d
}

func TestStartEncounter(t *testing.T) {
	sp := &stubProvider{}
	s := testSession("joy")
	s.Player.ActiveBuffs.Barrier = 2
	s.Player.ActiveDebuffs.Poison = 1

	if err := StartEncounter(context.Background(), sp, s, firstDungeon(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enc == nil || s.Enc.State != game.EncounterActive {
		t.Fatalf("expected an active encounter")
	}
	if s.Enc.Player != s.Player {
		t.Fatalf("encounter must share the session's player aggregate")
	}
	if s.Enc.Monster.Level != s.Player.Level {
		t.Fatalf("monster must scale to the player level, got %d", s.Enc.Monster.Level)
	}
	if s.Player.ActiveBuffs.Barrier != 0 || s.Player.ActiveDebuffs.Poison != 0 {
		t.Fatalf("stale combat state must clear on start, got %+v %+v", s.Player.ActiveBuffs, s.Player.ActiveDebuffs)
	}
	if len(sp.monsterLevels) != 1 || len(sp.questionTopics) != 1 {
		t.Fatalf("expected one monster and one question fetch, got %v %v", sp.monsterLevels, sp.questionTopics)
	}
}

func TestStartEncounter_LevelGate(t *testing.T) {
	sp := &stubProvider{}
	s := testSession("joy")
	locked := game.DefaultCatalog().DungeonByID("microbio") // recommended level 8

	if err := StartEncounter(context.Background(), sp, s, locked); err != ErrDungeonLocked {
		t.Fatalf("expected ErrDungeonLocked, got %v", err)
	}
	if len(sp.monsterLevels) != 0 {
		t.Fatalf("locked start must not fetch content")
	}
}

func TestStartEncounter_RejectsWhileActive(t *testing.T) {
	sp := &stubProvider{}
	s := testSession("joy")
	if err := StartEncounter(context.Background(), sp, s, firstDungeon(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := StartEncounter(context.Background(), sp, s, firstDungeon(t)); err != ErrEncounterActive {
		t.Fatalf("expected ErrEncounterActive, got %v", err)
	}
}

func TestNextRound(t *testing.T) {
	sp := &stubProvider{}
	s := testSession("joy")
	if err := StartEncounter(context.Background(), sp, s, firstDungeon(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NextRound(context.Background(), sp, s); err == nil {
		t.Fatalf("expected an error before the round is answered")
	}

	if _, _, err := s.Enc.SubmitAnswer(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NextRound(context.Background(), sp, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enc.Answered {
		t.Fatalf("expected a fresh unanswered round")
	}
	if len(sp.questionTopics) != 2 {
		t.Fatalf("expected a second question fetch, got %d", len(sp.questionTopics))
	}
}

func TestContinueEncounter_RequiresVictory(t *testing.T) {
	sp := &stubProvider{}
	s := testSession("joy")
	if err := ContinueEncounter(context.Background(), sp, s); err != ErrNoEncounter {
		t.Fatalf("expected ErrNoEncounter, got %v", err)
	}

	if err := StartEncounter(context.Background(), sp, s, firstDungeon(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ContinueEncounter(context.Background(), sp, s); err != ErrNotVictorious {
		t.Fatalf("expected ErrNotVictorious mid-fight, got %v", err)
	}

	s.Enc.Monster.HP = 1
	if _, outcome, err := s.Enc.SubmitAnswer(0); err != nil || outcome == 0 {
		t.Fatalf("expected a victory, got outcome %d err %v", outcome, err)
	}
	topic := s.Enc.Topic
	if err := ContinueEncounter(context.Background(), sp, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enc.State != game.EncounterActive || s.Enc.Topic != topic {
		t.Fatalf("expected a new active encounter in the same dungeon, got %q / %q", s.Enc.State, s.Enc.Topic)
	}
}

func TestLeaveEncounter_RestoresAfterDefeat(t *testing.T) {
	sp := &stubProvider{}
	s := testSession("joy")
	if err := StartEncounter(context.Background(), sp, s, firstDungeon(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Player.HP = 3
	s.Enc.Monster.Damage = 50
	if _, _, err := s.Enc.SubmitAnswer(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enc.State != game.EncounterDefeat {
		t.Fatalf("expected a defeat, got %q", s.Enc.State)
	}

	if err := LeaveEncounter(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enc != nil {
		t.Fatalf("expected the encounter discarded")
	}
	if s.Player.HP != s.Player.MaxHP || s.Player.MP != s.Player.MaxMP {
		t.Fatalf("leaving after defeat must restore resources, got HP=%d MP=%d", s.Player.HP, s.Player.MP)
	}
}

func TestLeaveEncounter_MidFightKeepsResources(t *testing.T) {
	sp := &stubProvider{}
	s := testSession("joy")
	if err := StartEncounter(context.Background(), sp, s, firstDungeon(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Player.HP = 42
	s.Player.Cooldowns[game.AbilityTriage] = 3

	if err := LeaveEncounter(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Player.HP != 42 {
		t.Fatalf("leaving alive must keep current HP, got %d", s.Player.HP)
	}
	if len(s.Player.Cooldowns) != 0 {
		t.Fatalf("cooldowns must clear on leave, got %v", s.Player.Cooldowns)
	}
}

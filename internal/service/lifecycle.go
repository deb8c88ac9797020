package service

import (
	"context"
	"errors"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/contentgen"
	"github.com/PranzNi/RPG-NURSE/internal/engine"
	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/PranzNi/RPG-NURSE/internal/logging"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoEncounter      = errors.New("no encounter in progress")
	ErrEncounterActive  = errors.New("an encounter is already in progress")
	ErrDungeonLocked    = errors.New("player level below the dungeon's recommended level")
	ErrEncounterNotOver = errors.New("encounter is still in progress")
	ErrNotVictorious    = errors.New("continuing requires a victorious encounter")
)

// StartEncounter begins a fight in the chosen dungeon. The monster and the
// first question are fetched concurrently; the provider degrades to
// fallback content internally, so only a context error can fail the fetch.
// Call with the session lock held.
func StartEncounter(ctx context.Context, provider contentgen.Provider, s *Session, d *game.Dungeon) error {
	if s.Enc != nil && s.Enc.State == game.EncounterActive {
		return ErrEncounterActive
	}
	if s.Player.Level < d.RecommendedLevel {
		return ErrDungeonLocked
	}

	// Leftover combat state from an abandoned fight does not carry in.
	s.Player.ActiveBuffs.Barrier = 0
	s.Player.ActiveBuffs.Adrenaline = false
	s.Player.ActiveDebuffs = game.ActiveDebuffs{}

	enc, err := fetchEncounter(ctx, provider, s.Player.Level, d.Topic)
	if err != nil {
		return err
	}
	enc.Player = s.Player
	s.Enc = enc
	logging.Info("encounter started", logging.Fields{
		constants.LogFieldUsername: s.Username,
		constants.LogFieldDungeon:  d.ID,
		constants.LogFieldTopic:    d.Topic,
		constants.LogFieldLevel:    s.Player.Level,
	})
	return nil
}

// NextRound fetches the next question for the running encounter after the
// current round was answered. Call with the session lock held.
func NextRound(ctx context.Context, provider contentgen.Provider, s *Session) error {
	if s.Enc == nil {
		return ErrNoEncounter
	}
	if s.Enc.State != game.EncounterActive {
		return engine.ErrEncounterNotActive
	}
	if !s.Enc.Answered {
		return engine.ErrRoundNotAnswered
	}
	q, err := provider.GenerateQuestion(ctx, s.Enc.Monster.Level, s.Enc.Topic)
	if err != nil {
		return err
	}
	return s.Enc.BeginNextRound(q)
}

// ContinueEncounter starts the next fight in the same dungeon after a
// victory. Call with the session lock held.
func ContinueEncounter(ctx context.Context, provider contentgen.Provider, s *Session) error {
	if s.Enc == nil {
		return ErrNoEncounter
	}
	if s.Enc.State != game.EncounterVictory {
		return ErrNotVictorious
	}
	enc, err := fetchEncounter(ctx, provider, s.Player.Level, s.Enc.Topic)
	if err != nil {
		return err
	}
	enc.Player = s.Player
	s.Enc = enc
	return nil
}

// LeaveEncounter abandons the current encounter and returns the player to
// dungeon selection. Leaving after a defeat restores full resources. Call
// with the session lock held.
func LeaveEncounter(s *Session) error {
	if s.Enc == nil {
		return ErrNoEncounter
	}
	if s.Enc.State == game.EncounterDefeat || s.Player.HP <= 0 {
		s.Player.HP = s.Player.MaxHP
		s.Player.MP = s.Player.MaxMP
	}
	s.Player.ActiveBuffs.Barrier = 0
	s.Player.ActiveBuffs.Adrenaline = false
	s.Player.ActiveDebuffs = game.ActiveDebuffs{}
	s.Player.Cooldowns = map[string]int{}
	s.Enc = nil
	return nil
}

// fetchEncounter builds a fresh encounter from concurrently generated
// content. The monster is scaled to the player's level.
func fetchEncounter(ctx context.Context, provider contentgen.Provider, level int, topic string) (*engine.Encounter, error) {
	var (
		monster  *game.Monster
		question *game.Question
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := provider.GenerateMonster(gctx, level, topic)
		monster = m
		return err
	})
	g.Go(func() error {
		q, err := provider.GenerateQuestion(gctx, level, topic)
		question = q
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return engine.NewEncounter(nil, monster, question, topic), nil
}

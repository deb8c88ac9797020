package engine

import (
	"testing"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

func TestAdvanceTurn_AgesCountersAndFloorsAtZero(t *testing.T) {
	p := game.NewPlayer("Test Nurse")
	p.Cooldowns[game.AbilityTriage] = 2
	p.Cooldowns[game.AbilityBarrier] = 0
	p.ActiveBuffs.Barrier = 1
	p.ActiveDebuffs.Poison = 1
	m := testMonster(1)
	m.ActiveDebuffs.Stunned = 1
	m.ActiveDebuffs.Burn = 2

	advanceTurn(p, m)

	if p.Cooldowns[game.AbilityTriage] != 1 || p.Cooldowns[game.AbilityBarrier] != 0 {
		t.Fatalf("unexpected cooldowns %v", p.Cooldowns)
	}
	if p.ActiveBuffs.Barrier != 0 || p.ActiveDebuffs.Poison != 0 {
		t.Fatalf("unexpected player counters %+v %+v", p.ActiveBuffs, p.ActiveDebuffs)
	}
	if m.ActiveDebuffs.Stunned != 0 || m.ActiveDebuffs.Burn != 1 {
		t.Fatalf("unexpected monster counters %+v", m.ActiveDebuffs)
	}

	advanceTurn(p, m)

	if p.ActiveBuffs.Barrier != 0 || m.ActiveDebuffs.Stunned != 0 {
		t.Fatalf("expired counters must not go negative, got %d and %d", p.ActiveBuffs.Barrier, m.ActiveDebuffs.Stunned)
	}
}

func TestAdvanceTurn_NilMonster(t *testing.T) {
	p := game.NewPlayer("Test Nurse")
	p.ActiveDebuffs.Burn = 1

	advanceTurn(p, nil)

	if p.ActiveDebuffs.Burn != 0 {
		t.Fatalf("expected burn aged, got %d", p.ActiveDebuffs.Burn)
	}
}

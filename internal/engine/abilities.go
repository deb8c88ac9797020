package engine

import (
	"fmt"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// UseAbility validates and applies one catalog ability. Legal only
// mid-battle while the round is unanswered. On any validation failure the
// error is returned and no state changes.
func (e *Encounter) UseAbility(ab *game.Ability) ([]game.LogEvent, error) {
	if err := e.guardAction(); err != nil {
		return nil, err
	}
	if e.Player.Level < ab.LevelReq {
		return nil, ErrAbilityLocked
	}
	if e.Player.MP < ab.MPCost {
		return nil, ErrNotEnoughMana
	}
	if e.Player.Cooldowns[ab.ID] > 0 {
		return nil, ErrAbilityOnCooldown
	}

	log := eventLog{}
	switch ab.ID {
	case game.AbilityTriage:
		e.Monster.ActiveDebuffs.Stunned = 1
		log.add(game.LogAbility, fmt.Sprintf("You used Triage! %s is Stunned for 1 turn.", e.Monster.Name))
	case game.AbilityBarrier:
		e.Player.ActiveBuffs.Barrier = 3
		log.add(game.LogAbility, "Barrier Cream applied! Defense up for 3 turns.")
	case game.AbilityAdrenaline:
		e.Player.ActiveBuffs.Adrenaline = true
		log.add(game.LogAbility, "Adrenaline injection! Next attack doubled.")
	default:
		return nil, ErrUnknownAbility
	}

	e.Player.MP -= ab.MPCost
	e.Player.Cooldowns[ab.ID] = ab.Cooldown
	return log, nil
}

// CastHeal is the fixed-cost mana heal, always available mid-battle while
// the round is unanswered.
func (e *Encounter) CastHeal() ([]game.LogEvent, error) {
	if err := e.guardAction(); err != nil {
		return nil, err
	}
	p := e.Player
	if p.MP < game.ManaCostHeal {
		return nil, ErrNotEnoughMana
	}

	healed := game.HealAmountBase + p.Stats.Intellect*2
	p.MP -= game.ManaCostHeal
	p.HP += healed
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}

	log := eventLog{}
	log.add(game.LogHeal, fmt.Sprintf("You healed for %d HP.", healed))
	return log, nil
}

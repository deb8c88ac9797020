package engine

import (
	"fmt"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// SubmitAnswer resolves the player's answer for the current round. Exactly
// one answer is legal per round. The returned events are ordered for
// display; the outcome tells the caller whether the encounter continues,
// ended in victory (progression already applied) or ended in defeat.
func (e *Encounter) SubmitAnswer(index int) ([]game.LogEvent, Outcome, error) {
	if err := e.guardAction(); err != nil {
		return nil, OutcomeContinue, err
	}
	if index < 0 || index >= len(e.Question.Options) {
		return nil, OutcomeContinue, ErrInvalidOption
	}

	// Stun and barrier are read as they stood when the answer was
	// submitted; the ledger advance below must not age them out of this
	// round's resolution.
	wasStunned := e.Monster.Stunned()
	hadBarrier := e.Player.ActiveBuffs.Barrier > 0

	advanceTurn(e.Player, e.Monster)
	e.Answered = true

	log := eventLog{}
	if index == e.Question.CorrectIndex {
		outcome := e.playerAttack(&log)
		return log, outcome, nil
	}

	if wasStunned {
		log.add(game.LogSuccess, fmt.Sprintf("%s is STUNNED and cannot attack!", e.Monster.Name))
		e.Monster.ActiveDebuffs.Stunned = 0
		return log, OutcomeContinue, nil
	}

	log.add(game.LogDanger, "Incorrect! The monster counter-attacks!")
	outcome := e.monsterAttack(&log, hadBarrier)
	return log, outcome, nil
}

// playerAttack applies a successful answer: adrenaline, crit roll, damage,
// mana gain, and the victory sequence when the monster drops.
func (e *Encounter) playerAttack(log *eventLog) Outcome {
	p, m := e.Player, e.Monster

	dmg := game.BaseDamageFor(p.Stats.Physique)
	if p.ActiveBuffs.Adrenaline {
		dmg *= 2
		p.ActiveBuffs.Adrenaline = false // one-shot, consumed here
		log.add(game.LogAbility, "Adrenaline Surge! Damage doubled!")
	}
	crit := e.roll() < game.CritChanceFor(p.Stats.Intellect)
	if crit {
		dmg *= 2
	}

	m.HP -= dmg
	if m.HP < 0 {
		m.HP = 0
	}
	p.MP += game.ManaPerHit
	if p.MP > p.MaxMP {
		p.MP = p.MaxMP
	}

	if crit {
		log.add(game.LogCrit, fmt.Sprintf("CRITICAL HIT! You dealt %d damage to %s!", dmg, m.Name))
	} else {
		log.add(game.LogDamage, fmt.Sprintf("Correct! You dealt %d damage.", dmg))
	}

	if m.HP == 0 {
		e.applyVictory(log)
		e.State = game.EncounterVictory
		return OutcomeVictory
	}
	return OutcomeContinue
}

// monsterAttack applies the counter-attack after a wrong answer. Mitigation
// never drops below one point of damage; an active barrier halves what is
// left.
func (e *Encounter) monsterAttack(log *eventLog, hadBarrier bool) Outcome {
	p, m := e.Player, e.Monster

	mitigated := m.Damage - p.Stats.Defense/2
	if mitigated < 1 {
		mitigated = 1
	}
	if hadBarrier {
		mitigated /= 2
		log.add(game.LogAbility, "Barrier absorbed 50% damage!")
	}

	p.HP -= mitigated
	if p.HP < 0 {
		p.HP = 0
	}
	log.add(game.LogDanger, fmt.Sprintf("%s hits you for %d damage!", m.Name, mitigated))

	if p.HP == 0 {
		log.add(game.LogDanger, "You have succumbed to the workload.")
		e.State = game.EncounterDefeat
		return OutcomeDefeat
	}
	return OutcomeContinue
}

// BeginNextRound installs the next question once the previous round was
// answered and the fight goes on.
func (e *Encounter) BeginNextRound(q *game.Question) error {
	if e == nil || e.State != game.EncounterActive {
		return ErrEncounterNotActive
	}
	if !e.Answered {
		return ErrRoundNotAnswered
	}
	e.Question = q
	e.Answered = false
	return nil
}

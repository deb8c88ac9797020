package engine

import (
	"fmt"
	"math"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// applyVictory runs the progression ledger exactly once per monster
// defeat: experience (with boost charge), loot, combat-state reset and the
// level check. Leveling is single-step: at most one level per victory,
// surplus xp carries over.
func (e *Encounter) applyVictory(log *eventLog) {
	p, m := e.Player, e.Monster

	xpGain := game.VictoryXPBase + m.Level*game.VictoryXPPerLevel
	boosted := false
	if p.ActiveBuffs.XPBoost > 0 {
		xpGain = int(math.Floor(float64(xpGain) * 1.5))
		p.ActiveBuffs.XPBoost-- // one charge spent regardless of outcome
		boosted = true
	}
	goldGain := game.VictoryGoldBase + m.Level*game.VictoryGoldPerLvl

	p.XP += xpGain
	p.Gold += goldGain

	// Combat-only state does not survive the encounter.
	p.ActiveBuffs.Barrier = 0
	p.ActiveBuffs.Adrenaline = false
	p.ActiveDebuffs = game.ActiveDebuffs{}
	p.Cooldowns = map[string]int{}

	log.add(game.LogSuccess, "Victory!")
	log.add(game.LogLoot, fmt.Sprintf("Found %d Gold.", goldGain))
	if boosted {
		log.add(game.LogSuccess, fmt.Sprintf("Gained %d XP (Buffed!).", xpGain))
	} else {
		log.add(game.LogSuccess, fmt.Sprintf("Gained %d XP.", xpGain))
	}

	if p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.XPToNext = int(math.Floor(float64(p.XPToNext) * 1.5))
		p.Level++
		p.StatPoints += game.LevelUpStatPoints
		p.HP = game.MaxHPFor(p.Stats.Stamina)
		p.MP = game.MaxMPFor(p.Stats.Intellect)
		log.add(game.LogSuccess, fmt.Sprintf("LEVEL UP! You are now level %d!", p.Level))
	}
}

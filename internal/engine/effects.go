package engine

import "github.com/PranzNi/RPG-NURSE/internal/game"

// advanceTurn ages every per-turn counter by one, flooring at zero. It runs
// exactly once per submitted answer, before that answer is resolved; the
// resolver reads its own snapshot of stun and barrier so an effect applied
// this round is consumed by use rather than by aging.
func advanceTurn(p *game.Player, m *game.Monster) {
	for id, turns := range p.Cooldowns {
		if turns > 0 {
			p.Cooldowns[id] = turns - 1
		}
	}
	if p.ActiveBuffs.Barrier > 0 {
		p.ActiveBuffs.Barrier--
	}
	if p.ActiveDebuffs.Poison > 0 {
		p.ActiveDebuffs.Poison--
	}
	if p.ActiveDebuffs.Burn > 0 {
		p.ActiveDebuffs.Burn--
	}
	if m == nil {
		return
	}
	if m.ActiveDebuffs.Stunned > 0 {
		m.ActiveDebuffs.Stunned--
	}
	if m.ActiveDebuffs.Poison > 0 {
		m.ActiveDebuffs.Poison--
	}
	if m.ActiveDebuffs.Burn > 0 {
		m.ActiveDebuffs.Burn--
	}
}

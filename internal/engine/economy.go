package engine

import (
	"fmt"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// BuyItem is a currency-gated purchase. Insufficient gold leaves the
// player untouched.
func BuyItem(p *game.Player, it *game.Item) ([]game.LogEvent, error) {
	if p.Gold < it.Cost {
		return nil, ErrNotEnoughGold
	}
	p.Gold -= it.Cost
	p.Inventory[it.ID]++

	log := eventLog{}
	log.add(game.LogLoot, fmt.Sprintf("Bought %s for %d Gold.", it.Name, it.Cost))
	return log, nil
}

// UseItem consumes one unit of an owned item. Heal items are a rejected
// no-op when the corresponding resource is already full; xp-boost items
// always succeed and stack charges.
func UseItem(p *game.Player, it *game.Item) ([]game.LogEvent, error) {
	if p.Inventory[it.ID] <= 0 {
		return nil, ErrItemNotOwned
	}

	switch it.EffectType {
	case game.EffectHealHP:
		if p.HP >= p.MaxHP {
			return nil, ErrResourceFull
		}
		p.HP += it.EffectValue
		if p.HP > p.MaxHP {
			p.HP = p.MaxHP
		}
	case game.EffectHealMP:
		if p.MP >= p.MaxMP {
			return nil, ErrResourceFull
		}
		p.MP += it.EffectValue
		if p.MP > p.MaxMP {
			p.MP = p.MaxMP
		}
	case game.EffectBuffXP:
		p.ActiveBuffs.XPBoost += it.EffectValue
	default:
		return nil, ErrUnknownItemEffect
	}

	p.Inventory[it.ID]--
	if p.Inventory[it.ID] <= 0 {
		delete(p.Inventory, it.ID)
	}

	log := eventLog{}
	log.add(game.LogHeal, fmt.Sprintf("Used %s.", it.Name))
	return log, nil
}

// AllocateStat spends one stat point on the named attribute and extends
// the resource maxima (and current values) by the resulting delta rather
// than resetting them.
func AllocateStat(p *game.Player, stat string) error {
	if p.StatPoints <= 0 {
		return ErrNoStatPoints
	}
	switch stat {
	case "physique":
		p.Stats.Physique++
	case "defense":
		p.Stats.Defense++
	case "stamina":
		p.Stats.Stamina++
	case "intellect":
		p.Stats.Intellect++
	default:
		return ErrUnknownStat
	}
	p.StatPoints--

	newMaxHP := game.MaxHPFor(p.Stats.Stamina)
	newMaxMP := game.MaxMPFor(p.Stats.Intellect)
	p.HP += newMaxHP - p.MaxHP
	p.MP += newMaxMP - p.MaxMP
	p.MaxHP = newMaxHP
	p.MaxMP = newMaxMP
	return nil
}

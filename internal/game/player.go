package game

import "encoding/json"

// NewPlayer builds a fresh level-1 player with the starting attribute
// spread and resources at their maxima.
func NewPlayer(name string) *Player {
	stats := Stats{
		Physique:  InitialStatValue,
		Defense:   InitialStatValue,
		Stamina:   InitialStatValue,
		Intellect: InitialStatValue,
	}
	return &Player{
		Name:          name,
		Level:         1,
		XP:            0,
		XPToNext:      InitialXPToNext,
		HP:            MaxHPFor(stats.Stamina),
		MaxHP:         MaxHPFor(stats.Stamina),
		MP:            MaxMPFor(stats.Intellect),
		MaxMP:         MaxMPFor(stats.Intellect),
		Stats:         stats,
		StatPoints:    0,
		Gold:          InitialGold,
		Inventory:     map[string]int{},
		ActiveBuffs:   ActiveBuffs{},
		ActiveDebuffs: ActiveDebuffs{},
		Cooldowns:     map[string]int{},
	}
}

// DecodePlayer unmarshals a stored save-game blob. Records written before
// newer fields existed (gold, inventory, buffs, debuffs, cooldowns) must
// load without discarding the rest of the record, so decoding starts from
// the NewPlayer defaults and only keys present in the blob override them.
func DecodePlayer(data []byte, name string) (*Player, error) {
	p := NewPlayer(name)
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	if p.Cooldowns == nil {
		p.Cooldowns = map[string]int{}
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// Encode serializes the player aggregate for persistence.
func (p *Player) Encode() ([]byte, error) {
	return json.Marshal(p)
}

package game

// Base resource pools before attribute scaling.
const (
	BaseHP = 50
	BaseMP = 20
)

// Combat tuning values shared by the resolver and progression ledger.
const (
	ManaCostHeal   = 30 // flat MP cost of the non-ability heal
	HealAmountBase = 25 // healed HP before intellect scaling
	ManaPerHit     = 5  // MP granted per successful attack

	VictoryXPBase      = 40
	VictoryXPPerLevel  = 10
	VictoryGoldBase    = 20
	VictoryGoldPerLvl  = 5
	LevelUpStatPoints  = 3
	CritChanceCap      = 50 // percent
	InitialGold        = 50
	InitialXPToNext    = 100
	InitialStatValue   = 5
	MonsterHPBase      = 50
	MonsterHPPerLevel  = 20
	MonsterDmgBase     = 5
	MonsterDmgPerLevel = 2
)

// MaxHPFor returns the maximum hit points for a stamina value.
func MaxHPFor(stamina int) int { return BaseHP + stamina*10 }

// MaxMPFor returns the maximum mana for an intellect value.
func MaxMPFor(intellect int) int { return BaseMP + intellect*5 }

// BaseDamageFor returns the unmodified attack damage for a physique value.
func BaseDamageFor(physique int) int { return 10 + physique*2 }

// CritChanceFor returns the critical-hit chance in percent, capped.
func CritChanceFor(intellect int) int {
	c := intellect * 2
	if c > CritChanceCap {
		c = CritChanceCap
	}
	return c
}

// MonsterMaxHPFor returns a monster's hit points for its level.
func MonsterMaxHPFor(level int) int { return MonsterHPBase + level*MonsterHPPerLevel }

// MonsterDamageFor returns a monster's flat attack damage for its level.
func MonsterDamageFor(level int) int { return MonsterDmgBase + level*MonsterDmgPerLevel }

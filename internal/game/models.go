package game

import (
	"gorm.io/gorm"
)

// Stats holds the four allocatable attributes. They are non-negative and
// only ever grow through stat-point spends.
type Stats struct {
	Physique  int `json:"physique"`  // damage
	Defense   int `json:"defense"`   // damage reduction
	Stamina   int `json:"stamina"`   // max HP
	Intellect int `json:"intellect"` // max MP + crit chance
}

// ActiveBuffs tracks the player's temporary advantages. XPBoost counts
// charges (one consumed per victory); Barrier counts turns; Adrenaline is
// consumed by the next successful attack.
type ActiveBuffs struct {
	XPBoost    int  `json:"xpBoost"`
	Barrier    int  `json:"barrier"`
	Adrenaline bool `json:"adrenaline"`
}

// ActiveDebuffs tracks turn-based ailments on the player. The counters are
// aged by the effect ledger; no code path currently deals periodic damage
// from them (extension point).
type ActiveDebuffs struct {
	Poison int `json:"poison"`
	Burn   int `json:"burn"`
}

// MonsterDebuffs tracks turn-based ailments on the monster.
type MonsterDebuffs struct {
	Stunned int `json:"stunned"`
	Poison  int `json:"poison"`
	Burn    int `json:"burn"`
}

// Player is the persistent player aggregate. JSON field names are kept
// camelCase because the serialized form is also the stored save-game blob
// and must stay readable across versions (see DecodePlayer).
type Player struct {
	Name          string         `json:"name"`
	Level         int            `json:"level"`
	XP            int            `json:"xp"`
	XPToNext      int            `json:"xpToNext"`
	HP            int            `json:"hp"`
	MaxHP         int            `json:"maxHp"`
	MP            int            `json:"mp"`
	MaxMP         int            `json:"maxMp"`
	Stats         Stats          `json:"stats"`
	StatPoints    int            `json:"statPoints"`
	Gold          int            `json:"gold"`
	Inventory     map[string]int `json:"inventory"` // item id -> count, entries strictly positive
	ActiveBuffs   ActiveBuffs    `json:"activeBuffs"`
	ActiveDebuffs ActiveDebuffs  `json:"activeDebuffs"`
	Cooldowns     map[string]int `json:"cooldowns"` // ability id -> turns remaining
}

// Monster is the per-encounter opponent. Created on encounter start,
// discarded on encounter end.
type Monster struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Level         int            `json:"level"`
	HP            int            `json:"hp"`
	MaxHP         int            `json:"maxHp"`
	Damage        int            `json:"damage"`
	ActiveDebuffs MonsterDebuffs `json:"activeDebuffs"`
}

// Stunned reports whether the monster currently skips its attack. The
// boolean view is always derived from the counter; there is no separate
// flag to keep in sync.
func (m *Monster) Stunned() bool {
	return m.ActiveDebuffs.Stunned > 0
}

// Question is a generated multiple-choice question. Immutable once issued;
// exactly one is current during a round.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Difficulty   int      `json:"difficulty"`
	Category     string   `json:"category"`
}

// EncounterState is the lifecycle phase of a single monster fight.
type EncounterState string

const (
	EncounterIdle    EncounterState = "idle"
	EncounterLoading EncounterState = "loading"
	EncounterActive  EncounterState = "active"
	EncounterVictory EncounterState = "victory"
	EncounterDefeat  EncounterState = "defeat"
)

// LogType classifies combat-log entries so clients can style them.
type LogType string

const (
	LogInfo    LogType = "info"
	LogDamage  LogType = "damage"
	LogHeal    LogType = "heal"
	LogCrit    LogType = "crit"
	LogError   LogType = "error"
	LogDanger  LogType = "danger"
	LogSuccess LogType = "success"
	LogLoot    LogType = "loot"
	LogAbility LogType = "ability"
)

// LogEvent is one ordered combat-log entry produced by a game operation.
type LogEvent struct {
	ID      string  `json:"id"`
	Message string  `json:"message"`
	Type    LogType `json:"type"`
}

// Account stores a registered player identity plus the serialized save
// game. The password is stored as a bcrypt hash and never serialized.
type Account struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"display_name"`
	// GameData holds the Player aggregate as a JSON blob. Kept opaque at
	// the storage layer; decoding with defaults happens in DecodePlayer.
	GameData []byte `json:"-" gorm:"column:game_data;type:blob"`
}

// TableName overrides the default GORM table name for Account.
func (Account) TableName() string { return "player_accounts" }

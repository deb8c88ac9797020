package engine

import (
	"errors"
	"math/rand"

	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/google/uuid"
)

var (
	ErrEncounterNotActive = errors.New("no active encounter")
	ErrRoundAnswered      = errors.New("round already answered; advance to the next question")
	ErrRoundNotAnswered   = errors.New("current round has not been answered yet")
	ErrInvalidOption      = errors.New("answer index out of range")
	ErrAbilityLocked      = errors.New("ability not unlocked at this level")
	ErrNotEnoughMana      = errors.New("not enough mana")
	ErrAbilityOnCooldown  = errors.New("ability is on cooldown")
	ErrUnknownAbility     = errors.New("unknown ability")
	ErrItemNotOwned       = errors.New("item not in inventory")
	ErrResourceFull       = errors.New("resource already full")
	ErrUnknownItemEffect  = errors.New("unknown item effect")
	ErrNotEnoughGold      = errors.New("not enough gold")
	ErrNoStatPoints       = errors.New("no stat points available")
	ErrUnknownStat        = errors.New("unknown attribute")
)

// Outcome is the terminal classification of a resolved answer.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// Encounter is one monster fight from spawn to victory or defeat. The
// player aggregate is shared with the session; the monster and question
// live only as long as the encounter. All operations are synchronous and
// mutate state in place; the caller serializes access.
type Encounter struct {
	Player   *game.Player
	Monster  *game.Monster
	Question *game.Question
	Topic    string
	State    game.EncounterState
	Answered bool

	// roll draws a uniform percent in [0,100) for crit checks. Replaced
	// in tests to force or forbid criticals.
	roll func() int
}

// NewEncounter wires an active encounter around freshly generated content.
func NewEncounter(p *game.Player, m *game.Monster, q *game.Question, topic string) *Encounter {
	return &Encounter{
		Player:   p,
		Monster:  m,
		Question: q,
		Topic:    topic,
		State:    game.EncounterActive,
		roll:     func() int { return rand.Intn(100) },
	}
}

// eventLog accumulates ordered combat-log entries for one operation.
type eventLog []game.LogEvent

func (l *eventLog) add(t game.LogType, msg string) {
	*l = append(*l, game.LogEvent{ID: uuid.NewString(), Message: msg, Type: t})
}

// guardAction validates the shared preconditions of mid-battle actions:
// the encounter is active and the current round is unanswered.
func (e *Encounter) guardAction() error {
	if e == nil || e.State != game.EncounterActive || e.Monster == nil || e.Question == nil {
		return ErrEncounterNotActive
	}
	if e.Answered {
		return ErrRoundAnswered
	}
	return nil
}

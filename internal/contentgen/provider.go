package contentgen

import (
	"context"
	"fmt"

	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/google/uuid"
)

// Provider generates encounter content for a dungeon topic and a monster
// level. Implementations must be usable without credentials: when upstream
// generation is unavailable they return deterministic fallback content
// instead of an error. Only context cancellation surfaces as an error.
type Provider interface {
	GenerateMonster(ctx context.Context, level int, topic string) (*game.Monster, error)
	GenerateQuestion(ctx context.Context, level int, topic string) (*game.Question, error)
}

// FallbackMonster returns the deterministic offline monster for a level.
// Stats come from the level scaling tables; only the flavor is canned.
func FallbackMonster(level int) *game.Monster {
	return &game.Monster{
		ID:          uuid.NewString(),
		Name:        "Generic Pathogen",
		Description: "A blob of unknown origin.",
		Level:       level,
		HP:          game.MonsterMaxHPFor(level),
		MaxHP:       game.MonsterMaxHPFor(level),
		Damage:      game.MonsterDamageFor(level),
	}
}

// FallbackQuestion returns the deterministic offline question for a topic.
// The correct option is always the first one.
func FallbackQuestion(topic string) *game.Question {
	return &game.Question{
		ID:           uuid.NewString(),
		Text:         fmt.Sprintf("Which action is most important in %s? (Fallback Question - API Error)", topic),
		Options:      []string{"Safety", "Documentation", "Speed", "Comfort"},
		CorrectIndex: 0,
		Explanation:  "Safety is always the priority.",
		Difficulty:   1,
		Category:     topic,
	}
}

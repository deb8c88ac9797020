package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/game"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional prompt templates for content generation. Use the tokens
	// {{topic}} and {{difficulty}} where the dungeon topic and the
	// student-audience wording should be substituted.
	MonsterPrompt  string `json:"monster_prompt"`
	QuestionPrompt string `json:"question_prompt"`
	// Optional catalog overrides. A present non-empty list replaces the
	// built-in one entirely.
	Abilities []game.Ability `json:"abilities"`
	Items     []game.Item    `json:"items"`
	Dungeons  []game.Dungeon `json:"dungeons"`
}

// LoadedConfig contains the server address, prompt templates and the
// static catalog the server runs with.
type LoadedConfig struct {
	ServerAddress          string
	MonsterPromptTemplate  string
	QuestionPromptTemplate string
	Catalog                *game.Catalog
}

// Load reads the optional configuration file. An empty path yields the
// built-in defaults; a given path must exist and validate.
func Load(path string) (*LoadedConfig, error) {
	cfg := &LoadedConfig{
		ServerAddress: constants.DefaultServerAddress,
		Catalog:       game.DefaultCatalog(),
	}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	cfg.MonsterPromptTemplate = strings.TrimSpace(rc.MonsterPrompt)
	cfg.QuestionPromptTemplate = strings.TrimSpace(rc.QuestionPrompt)

	if len(rc.Abilities) > 0 {
		if err := validateAbilities(path, rc.Abilities); err != nil {
			return nil, err
		}
		cfg.Catalog.Abilities = rc.Abilities
	}
	if len(rc.Items) > 0 {
		if err := validateItems(path, rc.Items); err != nil {
			return nil, err
		}
		cfg.Catalog.Items = rc.Items
	}
	if len(rc.Dungeons) > 0 {
		if err := validateDungeons(path, rc.Dungeons); err != nil {
			return nil, err
		}
		cfg.Catalog.Dungeons = rc.Dungeons
	}
	return cfg, nil
}

func validateAbilities(path string, abilities []game.Ability) error {
	seen := make(map[string]struct{}, len(abilities))
	for _, ab := range abilities {
		if ab.ID == "" || ab.Name == "" {
			return fmt.Errorf("config file %s: ability entry missing 'id' or 'name'", path)
		}
		if _, dup := seen[ab.ID]; dup {
			return fmt.Errorf("config file %s: duplicate ability id '%s'", path, ab.ID)
		}
		seen[ab.ID] = struct{}{}
		switch ab.ID {
		case game.AbilityTriage, game.AbilityBarrier, game.AbilityAdrenaline:
		default:
			return fmt.Errorf("config file %s: ability id '%s' has no combat effect", path, ab.ID)
		}
		if ab.MPCost < 0 || ab.Cooldown < 0 || ab.LevelReq < 0 {
			return fmt.Errorf("config file %s: ability '%s' has negative cost, cooldown or level", path, ab.ID)
		}
	}
	return nil
}

func validateItems(path string, items []game.Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.ID == "" || it.Name == "" {
			return fmt.Errorf("config file %s: item entry missing 'id' or 'name'", path)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("config file %s: duplicate item id '%s'", path, it.ID)
		}
		seen[it.ID] = struct{}{}
		switch it.EffectType {
		case game.EffectHealHP, game.EffectHealMP, game.EffectBuffXP:
		default:
			return fmt.Errorf("config file %s: item '%s' has unknown effect_type '%s'", path, it.ID, it.EffectType)
		}
		if it.Cost < 0 || it.EffectValue <= 0 {
			return fmt.Errorf("config file %s: item '%s' needs a non-negative cost and a positive effect_value", path, it.ID)
		}
	}
	return nil
}

func validateDungeons(path string, dungeons []game.Dungeon) error {
	seen := make(map[string]struct{}, len(dungeons))
	for _, d := range dungeons {
		if d.ID == "" || d.Name == "" || strings.TrimSpace(d.Topic) == "" {
			return fmt.Errorf("config file %s: dungeon entry missing 'id', 'name' or 'topic'", path)
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("config file %s: duplicate dungeon id '%s'", path, d.ID)
		}
		seen[d.ID] = struct{}{}
		if d.RecommendedLevel < 1 {
			return fmt.Errorf("config file %s: dungeon '%s' needs recommended_level >= 1", path, d.ID)
		}
	}
	return nil
}

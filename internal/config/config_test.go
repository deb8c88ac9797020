package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game_config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("unexpected default address %q", cfg.ServerAddress)
	}
	if len(cfg.Catalog.Dungeons) != 9 || len(cfg.Catalog.Items) != 3 || len(cfg.Catalog.Abilities) != 3 {
		t.Fatalf("expected the built-in catalog, got %d/%d/%d", len(cfg.Catalog.Dungeons), len(cfg.Catalog.Items), len(cfg.Catalog.Abilities))
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9090"},
		"question_prompt": "Ask about {{topic}}.",
		"dungeons": [
			{"id": "icu", "name": "ICU", "topic": "Critical Care", "recommended_level": 4}
		]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("expected overridden address, got %q", cfg.ServerAddress)
	}
	if cfg.QuestionPromptTemplate != "Ask about {{topic}}." {
		t.Fatalf("expected question prompt loaded, got %q", cfg.QuestionPromptTemplate)
	}
	if len(cfg.Catalog.Dungeons) != 1 || cfg.Catalog.Dungeons[0].ID != "icu" {
		t.Fatalf("expected dungeon override, got %+v", cfg.Catalog.Dungeons)
	}
	// untouched sections keep the defaults
	if len(cfg.Catalog.Items) != 3 {
		t.Fatalf("expected default items kept, got %d", len(cfg.Catalog.Items))
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errPart string
	}{
		{
			"unknown item effect",
			`{"items": [{"id": "x", "name": "X", "cost": 1, "effect_type": "teleport", "effect_value": 1}]}`,
			"unknown effect_type",
		},
		{
			"duplicate dungeon id",
			`{"dungeons": [
				{"id": "a", "name": "A", "topic": "T", "recommended_level": 1},
				{"id": "a", "name": "B", "topic": "T", "recommended_level": 1}
			]}`,
			"duplicate dungeon id",
		},
		{
			"ability without effect",
			`{"abilities": [{"id": "fireball", "name": "Fireball", "mp_cost": 5, "cooldown": 1, "level_req": 1}]}`,
			"no combat effect",
		},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), tc.errPart) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.errPart, err)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/game_config.json"); err == nil {
		t.Fatalf("expected error for a missing explicit config file")
	}
}

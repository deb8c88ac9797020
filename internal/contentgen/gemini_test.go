package contentgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// geminiStub serves a canned generateContent response whose single
// candidate text is the JSON encoding of payload.
func geminiStub(t *testing.T, payload interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal stub payload: %v", err)
		}
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": string(text)}},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func stubClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestGenerateMonster_UsesModelFlavorAndScaledStats(t *testing.T) {
	srv := geminiStub(t, monsterPayload{Name: "Sepsis Shambler", Description: "It oozes."})
	defer srv.Close()

	m, err := stubClient(t, srv).GenerateMonster(context.Background(), 3, "Microbiology & Parasitology")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "Sepsis Shambler" || m.Description != "It oozes." {
		t.Fatalf("expected model flavor, got %q / %q", m.Name, m.Description)
	}
	if m.HP != game.MonsterMaxHPFor(3) || m.Damage != game.MonsterDamageFor(3) {
		t.Fatalf("stats must come from level scaling, got HP=%d dmg=%d", m.HP, m.Damage)
	}
	if m.Level != 3 || m.ID == "" {
		t.Fatalf("unexpected monster identity: %+v", m)
	}
}

func TestGenerateMonster_FallsBackWithoutAPIKey(t *testing.T) {
	c := NewClient("")

	m, err := c.GenerateMonster(context.Background(), 5, "Health Assessment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "Generic Pathogen" || m.Description != "A blob of unknown origin." {
		t.Fatalf("expected fallback monster, got %q / %q", m.Name, m.Description)
	}
	if m.HP != game.MonsterMaxHPFor(5) {
		t.Fatalf("fallback must use level scaling, got HP=%d", m.HP)
	}
}

func TestGenerateMonster_FallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	m, err := stubClient(t, srv).GenerateMonster(context.Background(), 2, "Biochemistry for Nursing (err)")
	if err != nil {
		t.Fatalf("generation failures must not surface as errors, got %v", err)
	}
	if m.Name != "Generic Pathogen" {
		t.Fatalf("expected fallback monster, got %q", m.Name)
	}
}

func TestGenerateQuestion_UsesModelPayload(t *testing.T) {
	srv := geminiStub(t, questionPayload{
		Question:     "Which lab value indicates sepsis?",
		Options:      []string{"Lactate", "HDL", "TSH", "Amylase"},
		CorrectIndex: 0,
		Explanation:  "Elevated lactate reflects hypoperfusion.",
		Difficulty:   4,
	})
	defer srv.Close()

	q, err := stubClient(t, srv).GenerateQuestion(context.Background(), 4, "Fundamentals of Nursing Practice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "Which lab value indicates sepsis?" || len(q.Options) != 4 || q.CorrectIndex != 0 {
		t.Fatalf("unexpected question: %+v", q)
	}
	if q.Category != "Fundamentals of Nursing Practice" || q.ID == "" {
		t.Fatalf("expected topic category and an id, got %+v", q)
	}
}

func TestGenerateQuestion_FallsBackOnInvalidPayload(t *testing.T) {
	srv := geminiStub(t, questionPayload{
		Question:     "Broken?",
		Options:      []string{"Only", "Three", "Options"},
		CorrectIndex: 5,
	})
	defer srv.Close()

	q, err := stubClient(t, srv).GenerateQuestion(context.Background(), 1, "Health Education (bad payload)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "Which action is most important in Health Education (bad payload)? (Fallback Question - API Error)" {
		t.Fatalf("expected fallback question, got %q", q.Text)
	}
	if q.CorrectIndex != 0 || q.Options[0] != "Safety" {
		t.Fatalf("fallback answer must be the first option, got %+v", q)
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient("")
	if _, err := c.GenerateMonster(ctx, 1, "Nutrition and Diet Therapy (ctx)"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRenderPrompt(t *testing.T) {
	c := NewClient("")
	c.SetPromptTemplates("Monster about {{topic}} for a {{difficulty}} student.", "")

	got := c.renderPrompt(c.monsterPrompt, 7, "Pharmacology")
	want := "Monster about Pharmacology for a advanced student."
	if got != want {
		t.Fatalf("renderPrompt = %q, want %q", got, want)
	}
	if c.questionPrompt != defaultQuestionPrompt {
		t.Fatalf("empty template must keep the default")
	}
}

func TestDifficultyFor(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "beginner"}, {3, "beginner"}, {4, "intermediate"}, {6, "intermediate"}, {7, "advanced"},
	}
	for _, c := range cases {
		if got := difficultyFor(c.level); got != c.want {
			t.Fatalf("difficultyFor(%d) = %q, want %q", c.level, got, c.want)
		}
	}
}

package contentgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/dedupe"
	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/PranzNi/RPG-NURSE/internal/keys"
	"github.com/PranzNi/RPG-NURSE/internal/logging"
	"github.com/google/uuid"
)

// Client generates monsters and questions through the Gemini API. A missing
// or failing upstream never fails an encounter: every generation error is
// logged and answered with fallback content, so the game stays playable
// offline. Concurrent identical requests are deduplicated with singleflight.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	// Prompt templates use the tokens {{topic}} and {{difficulty}}.
	// Overridable at startup from the server configuration.
	monsterPrompt  string
	questionPrompt string
}

const defaultMonsterPrompt = "Generate a monster for a nursing-school dungeon crawler. " +
	"The dungeon topic is {{topic}} and the player is a {{difficulty}} student. " +
	"The name is a hospital or disease themed creature in 2 to 4 words; the description is one short ominous sentence."

const defaultQuestionPrompt = "Generate one multiple-choice nursing exam question about {{topic}} " +
	"for a {{difficulty}} student. Provide exactly 4 options, the index of the correct one, " +
	"a one-sentence explanation and a difficulty from 1 to 10."

// NewClient builds a Gemini client. An empty apiKey is allowed; every call
// will then serve fallback content.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:         apiKey,
		model:          constants.GeminiModel,
		baseURL:        constants.GeminiBaseURL,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		monsterPrompt:  defaultMonsterPrompt,
		questionPrompt: defaultQuestionPrompt,
	}
}

// SetPromptTemplates overrides the built-in prompt templates. Empty
// arguments keep the current template. Call from main after loading
// configuration.
func (c *Client) SetPromptTemplates(monster, question string) {
	if t := strings.TrimSpace(monster); t != "" {
		c.monsterPrompt = t
	}
	if t := strings.TrimSpace(question); t != "" {
		c.questionPrompt = t
	}
}

// difficultyFor maps a monster level to the student-audience wording used
// in prompts.
func difficultyFor(level int) string {
	switch {
	case level <= 3:
		return "beginner"
	case level <= 6:
		return "intermediate"
	default:
		return "advanced"
	}
}

func (c *Client) renderPrompt(template string, level int, topic string) string {
	p := strings.ReplaceAll(template, "{{topic}}", topic)
	return strings.ReplaceAll(p, "{{difficulty}}", difficultyFor(level))
}

// monsterPayload is the structured JSON the model is asked to return for a
// monster. Combat stats are never taken from the model; they come from the
// level scaling tables.
type monsterPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// questionPayload is the structured JSON the model is asked to return for
// a question.
type questionPayload struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Difficulty   int      `json:"difficulty"`
}

var monsterSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"name":        map[string]interface{}{"type": "string"},
		"description": map[string]interface{}{"type": "string"},
	},
	"required": []string{"name", "description"},
}

var questionSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"question":     map[string]interface{}{"type": "string"},
		"options":      map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"correctIndex": map[string]interface{}{"type": "integer"},
		"explanation":  map[string]interface{}{"type": "string"},
		"difficulty":   map[string]interface{}{"type": "integer"},
	},
	"required": []string{"question", "options", "correctIndex", "explanation", "difficulty"},
}

// GenerateMonster returns a themed monster for the topic and level. The
// flavor comes from the model when available and from FallbackMonster
// otherwise. Returns an error only when ctx is done first.
func (c *Client) GenerateMonster(ctx context.Context, level int, topic string) (*game.Monster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := keys.GenerationKey("monster", level, topic)
	ch := dedupe.MonsterGroup.DoChan(key, func() (interface{}, error) {
		var p monsterPayload
		if err := c.callGemini(c.renderPrompt(c.monsterPrompt, level, topic), monsterSchema, &p); err != nil {
			logging.Warn("monster generation fell back", err, logging.Fields{constants.LogFieldKey: key})
			return monsterPayload{}, nil
		}
		if strings.TrimSpace(p.Name) == "" {
			logging.Warn("monster generation returned empty name", nil, logging.Fields{constants.LogFieldKey: key})
			return monsterPayload{}, nil
		}
		return p, nil
	})

	select {
	case r := <-ch:
		p, _ := r.Val.(monsterPayload)
		if p.Name == "" {
			m := FallbackMonster(level)
			return m, nil
		}
		return &game.Monster{
			ID:          uuid.NewString(),
			Name:        p.Name,
			Description: p.Description,
			Level:       level,
			HP:          game.MonsterMaxHPFor(level),
			MaxHP:       game.MonsterMaxHPFor(level),
			Damage:      game.MonsterDamageFor(level),
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GenerateQuestion returns a multiple-choice question for the topic and
// level, falling back to FallbackQuestion on any generation problem.
// Returns an error only when ctx is done first.
func (c *Client) GenerateQuestion(ctx context.Context, level int, topic string) (*game.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := keys.GenerationKey("question", level, topic)
	ch := dedupe.QuestionGroup.DoChan(key, func() (interface{}, error) {
		var p questionPayload
		if err := c.callGemini(c.renderPrompt(c.questionPrompt, level, topic), questionSchema, &p); err != nil {
			logging.Warn("question generation fell back", err, logging.Fields{constants.LogFieldKey: key})
			return questionPayload{}, nil
		}
		if err := validateQuestion(p); err != nil {
			logging.Warn("question generation returned invalid payload", err, logging.Fields{constants.LogFieldKey: key})
			return questionPayload{}, nil
		}
		return p, nil
	})

	select {
	case r := <-ch:
		p, _ := r.Val.(questionPayload)
		if p.Question == "" {
			return FallbackQuestion(topic), nil
		}
		return &game.Question{
			ID:           uuid.NewString(),
			Text:         p.Question,
			Options:      p.Options,
			CorrectIndex: p.CorrectIndex,
			Explanation:  p.Explanation,
			Difficulty:   p.Difficulty,
			Category:     topic,
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func validateQuestion(p questionPayload) error {
	if strings.TrimSpace(p.Question) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(p.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(p.Options))
	}
	if p.CorrectIndex < 0 || p.CorrectIndex >= len(p.Options) {
		return fmt.Errorf("correct index %d out of range", p.CorrectIndex)
	}
	return nil
}

// callGemini posts one generateContent request asking for structured JSON
// and decodes the first candidate's text into out.
func (c *Client) callGemini(prompt string, schema map[string]interface{}, out interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("%s not set", constants.EnvGeminiAPIKey)
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": constants.ContentTypeJSON,
			"responseSchema":   schema,
		},
	}

	b, _ := json.Marshal(payload)
	url := c.baseURL + fmt.Sprintf(constants.GeminiGenerateContentPath, c.model)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini error: %d %s", resp.StatusCode, string(body))
	}

	var decoded struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("gemini returned no candidates")
	}

	text := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("gemini returned non-JSON payload: %w", err)
	}
	return nil
}

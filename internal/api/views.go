package api

import (
	"github.com/PranzNi/RPG-NURSE/internal/engine"
	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/PranzNi/RPG-NURSE/internal/service"
	"github.com/gin-gonic/gin"
)

// encounterView is the wire shape of a running encounter. The monster and
// question are copied so marshalling happens safely outside the session
// lock.
type encounterView struct {
	State    game.EncounterState `json:"state"`
	Topic    string              `json:"topic"`
	Answered bool                `json:"answered"`
	Monster  *game.Monster       `json:"monster,omitempty"`
	Question *game.Question      `json:"question,omitempty"`
}

// gameStateResponse is the common response body of game operations: the
// player, the encounter (when one exists) and the combat-log events the
// operation produced.
type gameStateResponse struct {
	Player    game.Player     `json:"player"`
	Encounter *encounterView  `json:"encounter,omitempty"`
	Events    []game.LogEvent `json:"events,omitempty"`
	Outcome   string          `json:"outcome,omitempty"`
}

// buildState snapshots the session into a response. Call with the session
// lock held.
func buildState(s *service.Session, events []game.LogEvent, outcome string) gameStateResponse {
	resp := gameStateResponse{Player: s.SnapshotPlayer(), Events: events, Outcome: outcome}
	if s.Enc != nil {
		ev := &encounterView{
			State:    s.Enc.State,
			Topic:    s.Enc.Topic,
			Answered: s.Enc.Answered,
		}
		if s.Enc.Monster != nil {
			m := *s.Enc.Monster
			ev.Monster = &m
		}
		if s.Enc.Question != nil {
			q := *s.Enc.Question
			ev.Question = &q
		}
		resp.Encounter = ev
	}
	return resp
}

func outcomeString(o engine.Outcome) string {
	switch o {
	case engine.OutcomeVictory:
		return "victory"
	case engine.OutcomeDefeat:
		return "defeat"
	default:
		return "continue"
	}
}

// respondPlayer sends the session state with the given HTTP status.
func respondPlayer(c *gin.Context, status int, s *service.Session) {
	s.Lock()
	resp := buildState(s, nil, "")
	s.Unlock()
	c.JSON(status, resp)
}

package api

import (
	"net/http"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/service"
	"github.com/gin-gonic/gin"
)

type startEncounterRequest struct {
	DungeonID string `json:"dungeon_id"`
}

// StartEncounter begins a fight in the requested dungeon.
func (h *GameHandler) StartEncounter(c *gin.Context) {
	var req startEncounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	dungeon := h.catalog.DungeonByID(req.DungeonID)
	if dungeon == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnknownDungeon})
		return
	}
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	err := service.StartEncounter(c.Request.Context(), h.provider, sess, dungeon)
	resp := buildState(sess, nil, "")
	sess.Unlock()

	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetEncounter returns the current encounter state.
func (h *GameHandler) GetEncounter(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Lock()
	resp := buildState(sess, nil, "")
	sess.Unlock()
	c.JSON(http.StatusOK, resp)
}

type answerRequest struct {
	Index *int `json:"index"`
}

// SubmitAnswer resolves the current round with the player's chosen option.
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	if sess.Enc == nil {
		sess.Unlock()
		httpError(c, service.ErrNoEncounter)
		return
	}
	events, outcome, err := sess.Enc.SubmitAnswer(*req.Index)
	if err == nil {
		h.saver.Schedule(sess.Username, sess.Player)
	}
	resp := buildState(sess, events, outcomeString(outcome))
	sess.Unlock()

	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextRound fetches the next question after a resolved round.
func (h *GameHandler) NextRound(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	err := service.NextRound(c.Request.Context(), h.provider, sess)
	resp := buildState(sess, nil, "")
	sess.Unlock()

	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type abilityRequest struct {
	AbilityID string `json:"ability_id"`
}

// UseAbility casts a catalog ability during the current round.
func (h *GameHandler) UseAbility(c *gin.Context) {
	var req abilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	ability := h.catalog.AbilityByID(req.AbilityID)
	if ability == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnknownAbilityName})
		return
	}
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	if sess.Enc == nil {
		sess.Unlock()
		httpError(c, service.ErrNoEncounter)
		return
	}
	events, err := sess.Enc.UseAbility(ability)
	if err == nil {
		h.saver.Schedule(sess.Username, sess.Player)
	}
	resp := buildState(sess, events, "")
	sess.Unlock()

	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CastHeal spends mana on the basic heal during the current round.
func (h *GameHandler) CastHeal(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	if sess.Enc == nil {
		sess.Unlock()
		httpError(c, service.ErrNoEncounter)
		return
	}
	events, err := sess.Enc.CastHeal()
	if err == nil {
		h.saver.Schedule(sess.Username, sess.Player)
	}
	resp := buildState(sess, events, "")
	sess.Unlock()

	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UseItemInCombat consumes an inventory item during an encounter.
func (h *GameHandler) UseItemInCombat(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Lock()
	noEnc := sess.Enc == nil
	sess.Unlock()
	if noEnc {
		httpError(c, service.ErrNoEncounter)
		return
	}
	h.UseItem(c)
}

// ContinueEncounter starts the next fight in the same dungeon after a
// victory.
func (h *GameHandler) ContinueEncounter(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	err := service.ContinueEncounter(c.Request.Context(), h.provider, sess)
	resp := buildState(sess, nil, "")
	sess.Unlock()

	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LeaveEncounter abandons the current encounter.
func (h *GameHandler) LeaveEncounter(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	err := service.LeaveEncounter(sess)
	if err == nil {
		h.saver.Schedule(sess.Username, sess.Player)
	}
	resp := buildState(sess, nil, "")
	sess.Unlock()

	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

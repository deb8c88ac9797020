package api

import (
	"net/http"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/engine"
	"github.com/gin-gonic/gin"
)

// GetPlayer returns the current player state.
func (h *GameHandler) GetPlayer(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	respondPlayer(c, http.StatusOK, sess)
}

// SavePlayer writes the save game immediately, bypassing the debounce.
func (h *GameHandler) SavePlayer(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Lock()
	err := h.saver.SaveNow(sess.Username, sess.Player)
	sess.Unlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveGame})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "saved"})
}

type allocateStatRequest struct {
	Stat string `json:"stat"`
}

// AllocateStat spends one stat point on an attribute.
func (h *GameHandler) AllocateStat(c *gin.Context) {
	var req allocateStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	err := engine.AllocateStat(sess.Player, req.Stat)
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

type itemRequest struct {
	ItemID string `json:"item_id"`
}

// UseItem consumes an inventory item outside of combat.
func (h *GameHandler) UseItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	item := h.catalog.ItemByID(req.ItemID)
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnknownItem})
		return
	}
	sess := h.session(c)
	if sess == nil {
		return
	}

	sess.Lock()
	events, err := engine.UseItem(sess.Player, item)
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

package api

import (
	"net/http"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/engine"
	"github.com/gin-gonic/gin"
)

// BuyItem purchases one shop item for gold.
func (h *GameHandler) BuyItem(c *gin.Context) {
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
	events, err := engine.BuyItem(sess.Player, item)
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

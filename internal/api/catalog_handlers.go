package api

import (
	"net/http"

	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/gin-gonic/gin"
)

type dungeonView struct {
	game.Dungeon
	Locked bool `json:"locked"`
}

// GetDungeons lists the dungeons with a lock flag computed from the
// player's level.
func (h *GameHandler) GetDungeons(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Lock()
	level := sess.Player.Level
	sess.Unlock()

	out := make([]dungeonView, 0, len(h.catalog.Dungeons))
	for _, d := range h.catalog.Dungeons {
		out = append(out, dungeonView{Dungeon: d, Locked: level < d.RecommendedLevel})
	}
	c.JSON(http.StatusOK, out)
}

// GetItems lists the shop items.
func (h *GameHandler) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Items)
}

// GetAbilities lists the abilities.
func (h *GameHandler) GetAbilities(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Abilities)
}

package api

import (
	"net/http"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/contentgen"
	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/PranzNi/RPG-NURSE/internal/service"
	"github.com/PranzNi/RPG-NURSE/internal/storage"
	"github.com/gin-gonic/gin"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo     storage.Repository
	sessions *service.Manager
	saver    *service.Saver
	provider contentgen.Provider
	catalog  *game.Catalog
}

// NewGameHandler creates a new GameHandler wired to the repository, the
// session registry, the debounced saver, the content provider and the
// static catalog.
func NewGameHandler(repo storage.Repository, sessions *service.Manager, saver *service.Saver, provider contentgen.Provider, catalog *game.Catalog) *GameHandler {
	return &GameHandler{repo: repo, sessions: sessions, saver: saver, provider: provider, catalog: catalog}
}

// session resolves the live session for the authenticated request. A valid
// token without a live session (server restart) is treated as an expired
// session.
func (h *GameHandler) session(c *gin.Context) *service.Session {
	username := usernameFromContext(c)
	if username == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
		return nil
	}
	s := h.sessions.Get(username)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
		return nil
	}
	return s
}

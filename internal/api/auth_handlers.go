package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/service"
	"github.com/PranzNi/RPG-NURSE/internal/storage"
	"github.com/gin-gonic/gin"
)

const sessionTTL = 24 * time.Hour

// AuthHandler groups account and session handlers.
type AuthHandler struct {
	repo     storage.Repository
	sessions *service.Manager
	saver    *service.Saver
}

func NewAuthHandler(repo storage.Repository, sessions *service.Manager, saver *service.Saver) *AuthHandler {
	return &AuthHandler{repo: repo, sessions: sessions, saver: saver}
}

type credentialsRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Register creates an account, opens a session and sets the cookie so the
// player is logged in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	p, err := service.Register(h.repo, req.Username, req.Password, req.DisplayName)
	switch {
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrUsernameTaken})
		return
	case errors.Is(err, service.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPasswordTooShort})
		return
	case errors.Is(err, service.ErrUsernameRequired):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}

	username := service.NormalizeUsername(req.Username)
	if !h.openSession(c, username, p.Name) {
		return
	}
	sess := h.sessions.Attach(username, p)
	respondPlayer(c, http.StatusCreated, sess)
}

// Login verifies credentials, loads the save game and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	p, err := service.Login(h.repo, req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidCredentials})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}

	username := service.NormalizeUsername(req.Username)
	if !h.openSession(c, username, p.Name) {
		return
	}
	sess := h.sessions.Attach(username, p)
	respondPlayer(c, http.StatusOK, sess)
}

// Logout flushes any pending save and drops the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	username := usernameFromContext(c)
	if sess := h.sessions.Get(username); sess != nil {
		sess.Lock()
		if err := h.saver.SaveNow(username, sess.Player); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveGame})
			sess.Unlock()
			return
		}
		sess.Unlock()
		h.sessions.Remove(username)
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "logged_out"})
}

func (h *AuthHandler) openSession(c *gin.Context, username, displayName string) bool {
	token, err := createSessionToken(username, displayName, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateToken})
		return false
	}
	setSessionCookie(c, token, sessionTTL)
	return true
}

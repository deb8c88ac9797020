package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/engine"
	"github.com/PranzNi/RPG-NURSE/internal/service"
	"github.com/gin-gonic/gin"
)

// httpError maps sentinel errors from the service and engine layers onto
// HTTP statuses. Unknown errors are treated as bad requests; transport
// failures from content generation surface as 502.
func httpError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrNoEncounter),
		errors.Is(err, service.ErrEncounterActive),
		errors.Is(err, service.ErrNotVictorious),
		errors.Is(err, engine.ErrEncounterNotActive),
		errors.Is(err, engine.ErrRoundAnswered),
		errors.Is(err, engine.ErrRoundNotAnswered):
		status = http.StatusConflict
	case errors.Is(err, service.ErrDungeonLocked),
		errors.Is(err, engine.ErrAbilityLocked):
		status = http.StatusForbidden
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error()})
}

package api

import (
	"errors"
	"net/http"

	"proposal_governance_system/internal/governance"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, governance.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, governance.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, governance.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, governance.ErrProvider):
		return http.StatusBadGateway
	case errors.Is(err, governance.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Errorw("request failed", "error", err, "path", c.FullPath())
	}

	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

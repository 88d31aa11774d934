// Package api exposes the voting engine operations over HTTP.
package api

import (
	"net/http"

	"proposal_governance_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	votes     services.VoteService
	polls     services.PollService
	phases    services.PhaseService
	decisions services.DecisionService
	logger    *zap.SugaredLogger
}

func NewHandlers(
	votes services.VoteService,
	polls services.PollService,
	phases services.PhaseService,
	decisions services.DecisionService,
	logger *zap.SugaredLogger,
) *Handlers {
	return &Handlers{
		votes:     votes,
		polls:     polls,
		phases:    phases,
		decisions: decisions,
		logger:    logger,
	}
}

func NewRouter(h *Handlers) *gin.Engine {
	g := gin.New()
	g.Use(gin.Recovery(), requestLogger(h.logger))

	g.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	v1 := g.Group("/api/v1")
	{
		v1.POST("/proposals/:id/votes", h.SubmitVote)
		v1.GET("/proposals/:id/votes", h.VoteSummary)
		v1.POST("/proposals/:id/executive-polls", h.PollExecutives)
		v1.GET("/proposals/:id/decision", h.Decision)
		v1.POST("/sweeps", h.RunSweep)
	}

	return g
}

func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debugw("request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
		)
	}
}

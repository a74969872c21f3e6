package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"recettes/internal/domain"
)

// StatsProvider is the aggregate surface the handler depends on.
type StatsProvider interface {
	IndexStats(ctx context.Context) (*domain.Stats, error)
}

// StatsHandler serves index-level aggregates.
type StatsHandler struct {
	stats StatsProvider
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(stats StatsProvider) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/v1/stats.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.IndexStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

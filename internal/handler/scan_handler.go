package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recettes/internal/domain"
)

// ScanService is the rescan surface the handler depends on.
type ScanService interface {
	Start(ctx context.Context) (*domain.ScanRun, error)
	GetRun(ctx context.Context, id uuid.UUID) (*domain.ScanRun, error)
	ListRuns(ctx context.Context, limit int) ([]domain.ScanRun, error)
}

// ScanHandler serves scan-run management.
type ScanHandler struct {
	scans ScanService
}

// NewScanHandler creates a ScanHandler.
func NewScanHandler(scans ScanService) *ScanHandler {
	return &ScanHandler{scans: scans}
}

// Create handles POST /api/v1/scans. The scan runs in the background; the
// response carries the run to poll.
func (h *ScanHandler) Create(c *gin.Context) {
	run, err := h.scans.Start(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c, run)
}

// List handles GET /api/v1/scans.
func (h *ScanHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := h.scans.ListRuns(c.Request.Context(), limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	if runs == nil {
		runs = []domain.ScanRun{}
	}
	RespondOK(c, runs)
}

// Get handles GET /api/v1/scans/:id.
func (h *ScanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a UUID")
		return
	}

	run, err := h.scans.GetRun(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, run)
}

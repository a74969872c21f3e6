package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recettes/internal/domain"
	"recettes/internal/port"
)

// RecipeService is the index read surface the handler depends on.
type RecipeService interface {
	List(ctx context.Context, filter port.RecipeFilter) ([]domain.RecipeRecord, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RecipeRecord, error)
	ListAll(ctx context.Context) ([]domain.RecipeRecord, error)
	Duplicates(ctx context.Context) (*domain.DuplicateReport, error)
}

// RecipeHandler serves the recipe index.
type RecipeHandler struct {
	recipes RecipeService
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(recipes RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// List handles GET /api/v1/recipes with optional status, search, offset and
// limit query parameters.
func (h *RecipeHandler) List(c *gin.Context) {
	status := c.Query("status")
	switch domain.ParseStatus(status) {
	case "", domain.ParseStatusConfident, domain.ParseStatusPartial, domain.ParseStatusIncomplete:
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_STATUS", "status must be CONFIDENT, PARTIAL or INCOMPLETE")
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := port.RecipeFilter{
		Status: status,
		Search: c.Query("search"),
		Offset: offset,
		Limit:  limit,
	}
	records, total, err := h.recipes.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	if records == nil {
		records = []domain.RecipeRecord{}
	}
	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/recipes/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a UUID")
		return
	}

	rec, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Duplicates handles GET /api/v1/recipes/duplicates.
func (h *RecipeHandler) Duplicates(c *gin.Context) {
	report, err := h.recipes.Duplicates(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

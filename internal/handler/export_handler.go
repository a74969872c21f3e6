package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"recettes/internal/csvexport"
	"recettes/internal/xlsxexport"
)

// ExportHandler serves downloadable reports over the stored index.
type ExportHandler struct {
	recipes RecipeService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(recipes RecipeService) *ExportHandler {
	return &ExportHandler{recipes: recipes}
}

// RecipesCSV handles GET /api/v1/export/recipes.csv.
func (h *ExportHandler) RecipesCSV(c *gin.Context) {
	records, err := h.recipes.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := csvexport.ExportRecipes(&buf, records); err != nil {
		HandleError(c, err)
		return
	}
	sendAttachment(c, csvexport.BuildFilename("recipes_list", "csv"), "text/csv; charset=utf-8", buf.Bytes())
}

// NutritionCSV handles GET /api/v1/export/nutrition.csv.
func (h *ExportHandler) NutritionCSV(c *gin.Context) {
	records, err := h.recipes.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := csvexport.ExportNutrition(&buf, records); err != nil {
		HandleError(c, err)
		return
	}
	sendAttachment(c, csvexport.BuildFilename("recipes_nutrition", "csv"), "text/csv; charset=utf-8", buf.Bytes())
}

// NutritionXLSX handles GET /api/v1/export/nutrition.xlsx.
func (h *ExportHandler) NutritionXLSX(c *gin.Context) {
	records, err := h.recipes.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := xlsxexport.WriteNutrition(&buf, records); err != nil {
		HandleError(c, err)
		return
	}
	sendAttachment(c, csvexport.BuildFilename("recipes_nutrition", "xlsx"),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func sendAttachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

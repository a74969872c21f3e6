package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"recettes/internal/domain"
	"recettes/internal/handler"
	"recettes/mocks"
)

func exportRecords() []domain.RecipeRecord {
	return []domain.RecipeRecord{
		{
			ID:          uuid.New(),
			FileID:      "doc-1",
			Title:       "Poulet au riz",
			ParseStatus: domain.ParseStatusConfident,
			Ingredients: domain.StringList{"200 g riz basmati"},
			Steps:       domain.StringList{"Cuire le riz."},
			NutritionTotals: domain.NutritionTotals{
				Portions:       4,
				TotalKcal:      720,
				KcalPerPortion: 180,
				ProteinsG:      14.0,
				LipidsG:        1.2,
				CarbsG:         158.0,
			},
		},
	}
}

func TestExportHandler_RecipesCSV(t *testing.T) {
	mockSvc := new(mocks.MockRecipeService)
	h := handler.NewExportHandler(mockSvc)

	mockSvc.On("ListAll", mock.Anything).Return(exportRecords(), nil)

	w := getRequest(t, h.RecipesCSV, "/api/v1/export/recipes.csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "recipes_list_")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "title;file_id;mimeType")
	assert.Contains(t, w.Body.String(), "Poulet au riz;doc-1")
}

func TestExportHandler_NutritionCSV(t *testing.T) {
	mockSvc := new(mocks.MockRecipeService)
	h := handler.NewExportHandler(mockSvc)

	mockSvc.On("ListAll", mock.Anything).Return(exportRecords(), nil)

	w := getRequest(t, h.NutritionCSV, "/api/v1/export/nutrition.csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "title;portions;total_kcal")
	assert.Contains(t, w.Body.String(), "Poulet au riz;4;720;180;14.0;1.2;158.0")
}

func TestExportHandler_NutritionXLSX(t *testing.T) {
	mockSvc := new(mocks.MockRecipeService)
	h := handler.NewExportHandler(mockSvc)

	mockSvc.On("ListAll", mock.Anything).Return(exportRecords(), nil)

	w := getRequest(t, h.NutritionXLSX, "/api/v1/export/nutrition.xlsx", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	f, err := excelize.OpenReader(w.Body)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Nutrition")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Poulet au riz", rows[1][0])
}

func TestExportHandler_RecipesCSV_ServiceError(t *testing.T) {
	mockSvc := new(mocks.MockRecipeService)
	h := handler.NewExportHandler(mockSvc)

	mockSvc.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

	w := getRequest(t, h.RecipesCSV, "/api/v1/export/recipes.csv", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

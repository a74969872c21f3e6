package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"recettes/internal/domain"
)

func TestWriteNutrition(t *testing.T) {
	records := []domain.RecipeRecord{
		{
			Title:       "Poulet grillé",
			ParseStatus: domain.ParseStatusConfident,
			NutritionTotals: domain.NutritionTotals{
				TotalKcal:      380,
				KcalPerPortion: 127,
				ProteinsG:      46.5,
				LipidsG:        20.4,
				Portions:       3,
			},
		},
		{
			Title:       "Page blanche",
			ParseStatus: domain.ParseStatusIncomplete,
			NutritionTotals: domain.NutritionTotals{
				Portions: 3,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteNutrition(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "title", rows[0][0])
	assert.Equal(t, "Poulet grillé", rows[1][0])
	assert.Equal(t, "CONFIDENT", rows[1][1])
	assert.Equal(t, "380", rows[1][3])
	assert.Equal(t, "Page blanche", rows[2][0])
}

func TestWriteNutritionEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNutrition(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

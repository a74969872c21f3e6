package csvexport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recettes/internal/domain"
)

func sampleRecord() domain.RecipeRecord {
	return domain.RecipeRecord{
		FileID:      "f-1",
		Title:       "Poulet grillé",
		MimeType:    "text/plain",
		FullPath:    "Recettes/Poulet grillé",
		Ingredients: domain.StringList{"150 g poulet", "1 cs huile d'olive"},
		Steps:       domain.StringList{"Saisir", "Servir"},
		NutritionTotals: domain.NutritionTotals{
			TotalKcal:      380,
			KcalPerPortion: 127,
			ProteinsG:      46.5,
			LipidsG:        20.4,
			CarbsG:         0,
			Portions:       3,
		},
	}
}

func TestExportRecipes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportRecipes(&buf, []domain.RecipeRecord{sampleRecord()}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, string(BOM)))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, string(BOM))), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "title;file_id;mimeType;webViewLink;fullPath;createdTime;modifiedTime;ingredients_count;steps_count", lines[0])
	assert.Equal(t, "Poulet grillé;f-1;text/plain;;Recettes/Poulet grillé;;;2;2", lines[1])
}

func TestExportNutrition(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportNutrition(&buf, []domain.RecipeRecord{sampleRecord()}))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), string(BOM))), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "title;portions;total_kcal;kcal_per_portion;proteins_g;lipids_g;carbs_g", lines[0])
	assert.Equal(t, "Poulet grillé;3;380;127;46.5;20.4;0.0", lines[1])
}

func TestExportEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportNutrition(&buf, nil))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), string(BOM))), "\n")
	assert.Len(t, lines, 1)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Recettes_2026", SanitizeFilename("Recettes / 2026 !"))
	assert.Equal(t, "a_b", SanitizeFilename("a___b"))
	assert.Len(t, SanitizeFilename(strings.Repeat("x", 150)), 100)
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("recipes list", "csv")
	assert.True(t, strings.HasPrefix(name, "recipes_list_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}

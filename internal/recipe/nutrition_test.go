package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recettes/internal/foodtable"
)

func TestComputeNutritionAggregation(t *testing.T) {
	table := foodtable.Builtin()

	totals := ComputeNutrition(table, []string{"150 g poulet", "1 cs huile d'olive"}, 3)

	// 165 kcal/100g * 150 g + 884 kcal/100g * 15 g = 247.5 + 132.6 = 380.1
	assert.Equal(t, 380, totals.TotalKcal)
	assert.Equal(t, 127, totals.KcalPerPortion)
	assert.Equal(t, 46.5, totals.ProteinsG)
	assert.Equal(t, 20.4, totals.LipidsG)
	assert.Equal(t, 0.0, totals.CarbsG)
	assert.Equal(t, 15.5, totals.ProteinsGPerPortion)
	assert.Equal(t, 6.8, totals.LipidsGPerPortion)
	assert.Equal(t, 3, totals.Portions)
}

func TestComputeNutritionClampsPortions(t *testing.T) {
	table := foodtable.Builtin()

	totals := ComputeNutrition(table, []string{"150 g poulet"}, 0)

	assert.Equal(t, 1, totals.Portions)
	assert.Equal(t, totals.TotalKcal, totals.KcalPerPortion)
}

func TestComputeNutritionIgnoresUnmatchedLines(t *testing.T) {
	table := foodtable.Builtin()

	totals := ComputeNutrition(table, []string{"150 g poulet", "1 botte de coriandre"}, 1)

	assert.Equal(t, 248, totals.TotalKcal)
}

func TestComputeNutritionEmptyInput(t *testing.T) {
	totals := ComputeNutrition(foodtable.Builtin(), nil, 4)

	assert.Zero(t, totals.TotalKcal)
	assert.Equal(t, 4, totals.Portions)
}

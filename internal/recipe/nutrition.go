package recipe

import (
	"math"

	"recettes/internal/domain"
	"recettes/internal/foodtable"
)

// ComputeNutrition sums the macro contributions of every ingredient line that
// matches a table row and divides by the portion count, clamped to at least 1.
// Unmatched lines contribute nothing. Sums stay full precision; rounding to
// whole kcal and one-decimal macros happens only on the returned value.
func ComputeNutrition(table *foodtable.Table, ingredients []string, portions int) domain.NutritionTotals {
	var kcal, protein, fat, carb float64
	for _, line := range ingredients {
		row, ok := table.Match(line)
		if !ok {
			continue
		}
		grams := ResolveQuantity(line, row)
		kcal += row.KcalPer100g * grams / 100
		protein += row.ProteinGPer100g * grams / 100
		fat += row.FatGPer100g * grams / 100
		carb += row.CarbGPer100g * grams / 100
	}

	if portions < 1 {
		portions = 1
	}
	p := float64(portions)

	return domain.NutritionTotals{
		TotalKcal:           int(math.Round(kcal)),
		KcalPerPortion:      int(math.Round(kcal / p)),
		ProteinsG:           round1(protein),
		LipidsG:             round1(fat),
		CarbsG:              round1(carb),
		ProteinsGPerPortion: round1(protein / p),
		LipidsGPerPortion:   round1(fat / p),
		CarbsGPerPortion:    round1(carb / p),
		Portions:            portions,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

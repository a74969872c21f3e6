package foodtable

import "recettes/internal/domain"

// builtinRows is the fallback composition table shipped with the binary. It
// covers the staples that dominate the corpus so a missing external table
// still yields usable estimates.
func builtinRows() []domain.FoodRow {
	return []domain.FoodRow{
		{
			Food:            "poulet",
			Aliases:         []string{"blanc de poulet", "poulet"},
			Unit:            domain.FoodUnitGrams,
			KcalPer100g:     165,
			ProteinGPer100g: 31,
			FatGPer100g:     3.6,
			CarbGPer100g:    0,
		},
		{
			Food:            "pomme de terre",
			Aliases:         []string{"pdt", "pommes de terre", "patate"},
			Unit:            domain.FoodUnitGrams,
			KcalPer100g:     77,
			ProteinGPer100g: 2,
			FatGPer100g:     0.1,
			CarbGPer100g:    17,
		},
		{
			Food:            "riz basmati",
			Aliases:         []string{"riz"},
			Unit:            domain.FoodUnitGrams,
			KcalPer100g:     360,
			ProteinGPer100g: 7,
			FatGPer100g:     0.6,
			CarbGPer100g:    79,
		},
		{
			Food:            "pâtes",
			Aliases:         []string{"pates", "spaghetti", "tagliatelles"},
			Unit:            domain.FoodUnitGrams,
			KcalPer100g:     350,
			ProteinGPer100g: 12,
			FatGPer100g:     1.5,
			CarbGPer100g:    73,
		},
		{
			Food:            "carotte",
			Aliases:         []string{"carottes"},
			Unit:            domain.FoodUnitGrams,
			KcalPer100g:     41,
			ProteinGPer100g: 0.9,
			FatGPer100g:     0.2,
			CarbGPer100g:    10,
		},
		{
			Food:            "oignon",
			Aliases:         []string{"oignons"},
			Unit:            domain.FoodUnitPiece,
			GramsPerUnit:    110,
			KcalPer100g:     40,
			ProteinGPer100g: 1.1,
			FatGPer100g:     0.1,
			CarbGPer100g:    9,
		},
		{
			Food:            "huile d'olive",
			Aliases:         []string{"huile olive", "huile"},
			Unit:            domain.FoodUnitMilliliter,
			KcalPer100g:     884,
			ProteinGPer100g: 0,
			FatGPer100g:     100,
			CarbGPer100g:    0,
		},
	}
}

// Builtin returns a table backed only by the compiled-in rows.
func Builtin() *Table {
	return New(builtinRows())
}

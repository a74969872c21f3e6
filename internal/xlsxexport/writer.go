// Package xlsxexport renders the nutrition summary as an Excel workbook for
// people who prefer a spreadsheet over the raw CSV reports.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"recettes/internal/domain"
)

const sheetName = "Nutrition"

var headers = []interface{}{
	"title", "status", "portions", "total_kcal", "kcal_per_portion",
	"proteins_g", "lipids_g", "carbs_g",
}

// WriteNutrition writes a single-sheet workbook with one row per recipe.
func WriteNutrition(w io.Writer, records []domain.RecipeRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("xlsxexport: write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "H1", bold)
	}

	for i := range records {
		r := &records[i]
		row := []interface{}{
			r.Title,
			string(r.ParseStatus),
			r.Portions,
			r.TotalKcal,
			r.KcalPerPortion,
			r.ProteinsG,
			r.LipidsG,
			r.CarbsG,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsxexport: write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

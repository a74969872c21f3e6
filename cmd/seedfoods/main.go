// Command seedfoods converts a food-composition Excel workbook into the
// semicolon-delimited CSV table the indexer loads at startup.
// Expected sheet columns: food, aliases (pipe-separated), unit (g|ml|unit),
// grams_per_unit, kcal_per_100g, protein_g_per_100g, fat_g_per_100g,
// carb_g_per_100g. Data starts at row index 1.
// Usage: go run ./cmd/seedfoods <workbook.xlsx> [output.csv]
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

var header = []string{
	"food", "aliases", "unit", "grams_per_unit",
	"kcal_per_100g", "protein_g_per_100g", "fat_g_per_100g", "carb_g_per_100g",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seedfoods <workbook.xlsx> [output.csv]")
		os.Exit(1)
	}
	xlsxPath := os.Args[1]
	outPath := "foods.csv"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("sheet %s has no data rows", sheetName)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := csv.NewWriter(out)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	written := 0
	for i := 1; i < len(rows); i++ {
		rec := normalizeRow(rows[i])
		if rec == nil {
			continue
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
		written++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	log.Printf("wrote %d food rows to %s", written, outPath)
	return nil
}

// normalizeRow pads the row to the full column count, trims cells and lowers
// the unit. Rows with an empty food name are dropped.
func normalizeRow(row []string) []string {
	rec := make([]string, len(header))
	for i := range rec {
		if i < len(row) {
			rec[i] = strings.TrimSpace(row[i])
		}
	}
	if rec[0] == "" {
		return nil
	}
	rec[2] = strings.ToLower(rec[2])
	if rec[2] == "" {
		rec[2] = "g"
	}
	return rec
}

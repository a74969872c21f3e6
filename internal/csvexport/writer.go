// Package csvexport writes the semicolon-delimited recipe summaries. The
// delimiter and column sets match the historical reports consumed by the
// kitchen spreadsheet, so they must not change without coordination.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"recettes/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Delimiter used by every exported report.
const Delimiter = ';'

var recipeColumns = []string{
	"title",
	"file_id",
	"mimeType",
	"webViewLink",
	"fullPath",
	"createdTime",
	"modifiedTime",
	"ingredients_count",
	"steps_count",
}

var nutritionColumns = []string{
	"title",
	"portions",
	"total_kcal",
	"kcal_per_portion",
	"proteins_g",
	"lipids_g",
	"carbs_g",
}

// Writer wraps csv.Writer configured for semicolon-delimited output.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	return &Writer{csv: cw}
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteRecipeHeader writes the recipe-summary header row.
func (w *Writer) WriteRecipeHeader() error {
	return w.csv.Write(recipeColumns)
}

// WriteRecipes converts records to recipe-summary rows and writes them.
func (w *Writer) WriteRecipes(records []domain.RecipeRecord) error {
	for i := range records {
		if err := w.csv.Write(recipeRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteNutritionHeader writes the nutrition-summary header row.
func (w *Writer) WriteNutritionHeader() error {
	return w.csv.Write(nutritionColumns)
}

// WriteNutrition converts records to nutrition-summary rows and writes them.
func (w *Writer) WriteNutrition(records []domain.RecipeRecord) error {
	for i := range records {
		if err := w.csv.Write(nutritionRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// ExportRecipes writes the BOM, header and all recipe rows to w.
func ExportRecipes(w io.Writer, records []domain.RecipeRecord) error {
	return export(w, records, (*Writer).WriteRecipeHeader, (*Writer).WriteRecipes)
}

// ExportNutrition writes the BOM, header and all nutrition rows to w.
func ExportNutrition(w io.Writer, records []domain.RecipeRecord) error {
	return export(w, records, (*Writer).WriteNutritionHeader, (*Writer).WriteNutrition)
}

func export(
	w io.Writer,
	records []domain.RecipeRecord,
	header func(*Writer) error,
	rows func(*Writer, []domain.RecipeRecord) error,
) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewWriter(w)
	if err := header(cw); err != nil {
		return err
	}
	if err := rows(cw, records); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func recipeRow(r *domain.RecipeRecord) []string {
	return []string{
		r.Title,
		r.FileID,
		r.MimeType,
		r.WebViewLink,
		r.FullPath,
		r.CreatedTime,
		r.ModifiedTime,
		strconv.Itoa(len(r.Ingredients)),
		strconv.Itoa(len(r.Steps)),
	}
}

func nutritionRow(r *domain.RecipeRecord) []string {
	return []string{
		r.Title,
		strconv.Itoa(r.Portions),
		strconv.Itoa(r.TotalKcal),
		strconv.Itoa(r.KcalPerPortion),
		formatMacro(r.ProteinsG),
		formatMacro(r.LipidsG),
		formatMacro(r.CarbsG),
	}
}

func formatMacro(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition headers.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), time.Now().Format("2006-01-02"), ext)
}

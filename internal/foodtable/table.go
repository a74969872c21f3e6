// Package foodtable loads and queries the food-composition table that backs
// nutrition estimation. The table is ordered: lookups scan rows top to bottom
// and the first row whose name or alias appears in the queried line wins, so
// more specific entries must be listed before generic ones.
package foodtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"recettes/internal/domain"
	"recettes/internal/textnorm"
)

// Table is an ordered food-composition table with precomputed, accent-folded
// match tokens. A Table is immutable after construction and safe for
// concurrent reads.
type Table struct {
	rows   []domain.FoodRow
	tokens [][]string
}

// New builds a table preserving the given row order.
func New(rows []domain.FoodRow) *Table {
	t := &Table{rows: rows, tokens: make([][]string, len(rows))}
	for i, row := range rows {
		toks := make([]string, 0, len(row.Aliases)+1)
		if n := textnorm.Normalize(row.Food); n != "" {
			toks = append(toks, n)
		}
		for _, a := range row.Aliases {
			if n := textnorm.Normalize(a); n != "" {
				toks = append(toks, n)
			}
		}
		t.tokens[i] = toks
	}
	return t
}

// Rows returns the underlying rows in lookup order.
func (t *Table) Rows() []domain.FoodRow {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Match scans rows in order and returns the first one whose name or alias
// occurs as a whole word in the line, after both sides are lowercased and
// accent-folded. Multi-word tokens match as phrases.
func (t *Table) Match(line string) (domain.FoodRow, bool) {
	padded := " " + textnorm.Normalize(line) + " "
	for i, toks := range t.tokens {
		for _, tok := range toks {
			if strings.Contains(padded, " "+tok+" ") {
				return t.rows[i], true
			}
		}
	}
	return domain.FoodRow{}, false
}

// OilLike reports whether the row represents an oil, which changes the gram
// weight assumed for spoon and cup measures.
func OilLike(row domain.FoodRow) bool {
	joined := textnorm.Normalize(row.Food + " " + strings.Join(row.Aliases, " "))
	return strings.Contains(" "+joined+" ", " huile ")
}

// Load reads an external semicolon-delimited table from path and appends the
// builtin rows whose food name is absent from it. External rows keep their
// file order and take precedence over the builtin entries.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("foodtable: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("foodtable: parse %s: %w", path, err)
	}
	return New(mergeBuiltin(rows)), nil
}

func mergeBuiltin(external []domain.FoodRow) []domain.FoodRow {
	seen := make(map[string]struct{}, len(external))
	for _, r := range external {
		seen[textnorm.Normalize(r.Food)] = struct{}{}
	}
	merged := external
	for _, b := range builtinRows() {
		if _, ok := seen[textnorm.Normalize(b.Food)]; !ok {
			merged = append(merged, b)
		}
	}
	return merged
}

var requiredColumns = []string{
	"food", "aliases", "unit", "grams_per_unit",
	"kcal_per_100g", "protein_g_per_100g", "fat_g_per_100g", "carb_g_per_100g",
}

func parseCSV(r io.Reader) ([]domain.FoodRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrFoodTableInvalid, c)
		}
	}

	field := func(rec []string, name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []domain.FoodRow
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		food := field(rec, "food")
		if food == "" {
			continue
		}
		row := domain.FoodRow{
			Food: food,
			Unit: domain.FoodUnit(strings.ToLower(field(rec, "unit"))),
		}
		if aliases := field(rec, "aliases"); aliases != "" {
			for _, a := range strings.Split(aliases, "|") {
				if a = strings.TrimSpace(a); a != "" {
					row.Aliases = append(row.Aliases, a)
				}
			}
		}
		switch row.Unit {
		case domain.FoodUnitGrams, domain.FoodUnitMilliliter, domain.FoodUnitPiece:
		case "":
			row.Unit = domain.FoodUnitGrams
		default:
			return nil, fmt.Errorf("%w: line %d: unknown unit %q", domain.ErrFoodTableInvalid, line, row.Unit)
		}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"grams_per_unit", &row.GramsPerUnit},
			{"kcal_per_100g", &row.KcalPer100g},
			{"protein_g_per_100g", &row.ProteinGPer100g},
			{"fat_g_per_100g", &row.FatGPer100g},
			{"carb_g_per_100g", &row.CarbGPer100g},
		} {
			v, err := parseFloat(field(rec, f.name))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: column %q: %v", domain.ErrFoodTableInvalid, line, f.name, err)
			}
			*f.dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

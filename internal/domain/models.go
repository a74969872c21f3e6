package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RawDocument is a document handed to the pipeline by an acquisition source.
// The source owns extraction; the pipeline only ever sees identifier, metadata
// and raw text.
type RawDocument struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	WebViewLink  string `json:"webViewLink,omitempty"`
	CreatedTime  string `json:"createdTime,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	FullPath     string `json:"fullPath,omitempty"`
}

// FoodRow is one entry of the food-composition table. Nutritional densities
// are per 100 g edible weight; GramsPerUnit only applies when Unit is "unit".
type FoodRow struct {
	Food            string   `json:"food"`
	Aliases         []string `json:"aliases"`
	Unit            FoodUnit `json:"unit"`
	GramsPerUnit    float64  `json:"grams_per_unit"`
	KcalPer100g     float64  `json:"kcal_per_100g"`
	ProteinGPer100g float64  `json:"protein_g_per_100g"`
	FatGPer100g     float64  `json:"fat_g_per_100g"`
	CarbGPer100g    float64  `json:"carb_g_per_100g"`
}

// SectionSplit is the result of locating the ingredients and steps blocks
// inside raw document text. Empty blocks are "", never an error.
type SectionSplit struct {
	IngredientsText string
	StepsText       string
	Status          ParseStatus
	Notes           []string
}

// NutritionTotals holds the estimated macros for a whole recipe and per
// portion. Values are already rounded for presentation (kcal to the unit,
// macros to one decimal).
type NutritionTotals struct {
	TotalKcal           int     `db:"total_kcal" json:"total_kcal"`
	KcalPerPortion      int     `db:"kcal_per_portion" json:"kcal_per_portion"`
	ProteinsG           float64 `db:"proteins_g" json:"proteins_g"`
	LipidsG             float64 `db:"lipids_g" json:"lipids_g"`
	CarbsG              float64 `db:"carbs_g" json:"carbs_g"`
	ProteinsGPerPortion float64 `db:"proteins_g_per_portion" json:"proteins_g_per_portion"`
	LipidsGPerPortion   float64 `db:"lipids_g_per_portion" json:"lipids_g_per_portion"`
	CarbsGPerPortion    float64 `db:"carbs_g_per_portion" json:"carbs_g_per_portion"`
	Portions            int     `db:"portions" json:"portions"`
}

// RecipeRecord is the terminal entity of one pipeline run over one document.
// Records are immutable once written; a full rescan supersedes them wholesale.
type RecipeRecord struct {
	ID                 uuid.UUID   `db:"id" json:"-"`
	ScanRunID          uuid.UUID   `db:"scan_run_id" json:"-"`
	FileID             string      `db:"file_id" json:"file_id"`
	Title              string      `db:"title" json:"title"`
	NormalizedTitle    string      `db:"normalized_title" json:"normalized_title"`
	TitleKey           string      `db:"title_key" json:"title_key"`
	MimeType           string      `db:"mime_type" json:"mimeType"`
	WebViewLink        string      `db:"web_view_link" json:"webViewLink,omitempty"`
	FullPath           string      `db:"full_path" json:"fullPath"`
	CreatedTime        string      `db:"created_time" json:"createdTime,omitempty"`
	ModifiedTime       string      `db:"modified_time" json:"modifiedTime,omitempty"`
	IngredientsRaw     string      `db:"ingredients_raw" json:"ingredients_raw"`
	StepsRaw           string      `db:"steps_raw" json:"steps_raw"`
	Ingredients        StringList  `db:"ingredients" json:"ingredients"`
	Steps              StringList  `db:"steps" json:"steps"`
	IngredientsInvalid StringList  `db:"ingredients_invalid" json:"ingredients_invalid"`
	ParseStatus        ParseStatus `db:"parse_status" json:"parse_status"`
	ParseNotes         StringList  `db:"parse_notes" json:"parse_notes"`
	NutritionTotals
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// ScanRun tracks one full pass over the document source.
type ScanRun struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Status           ScanStatus `db:"status" json:"status"`
	DocumentsTotal   int        `db:"documents_total" json:"documents_total"`
	DocumentsIndexed int        `db:"documents_indexed" json:"documents_indexed"`
	DocumentsSkipped int        `db:"documents_skipped" json:"documents_skipped"`
	Error            string     `db:"error" json:"error,omitempty"`
	StartedAt        time.Time  `db:"started_at" json:"started_at"`
	FinishedAt       *time.Time `db:"finished_at" json:"finished_at,omitempty"`
}

// Stats aggregates index-level figures for the stats endpoint.
type Stats struct {
	TotalRecipes      int     `db:"total_recipes" json:"total_recipes"`
	Confident         int     `db:"confident" json:"confident"`
	Partial           int     `db:"partial" json:"partial"`
	Incomplete        int     `db:"incomplete" json:"incomplete"`
	ExactDuplicates   int     `db:"exact_duplicates" json:"exact_duplicates"`
	AvgKcalPerPortion float64 `db:"avg_kcal_per_portion" json:"avg_kcal_per_portion"`
}

// DuplicateGroup is one cluster of recipes sharing a deduplication key.
type DuplicateGroup struct {
	Key     string           `json:"key"`
	Entries []DuplicateEntry `json:"entries"`
}

// DuplicateEntry identifies one recipe inside a duplicate group.
type DuplicateEntry struct {
	Title           string `db:"title" json:"title"`
	FileID          string `db:"file_id" json:"file_id"`
	FullPath        string `db:"full_path" json:"fullPath"`
	NormalizedTitle string `db:"normalized_title" json:"normalized_title"`
	TitleKey        string `db:"title_key" json:"title_key"`
}

// DuplicateReport holds both duplicate relations computed over the full index.
type DuplicateReport struct {
	Exact []DuplicateGroup `json:"exact"`
	Near  []DuplicateGroup `json:"near"`
}

// StringList is a []string stored as a JSONB column. It marshals to [] rather
// than null so exported records always carry arrays.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
}

// MarshalJSON emits [] instead of null for nil lists.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"recettes/internal/domain"
	"recettes/internal/foodtable"
)

// Caps bounding downstream cost on pathological documents.
const (
	maxIngredientLines = 120
	maxStepLines       = 200
)

// BuildRecord runs the full analysis pipeline over one document's raw text
// and assembles the recipe record: section split, ingredient validation,
// portion detection, status policy and, for confident parses, nutrition.
// Empty text yields an INCOMPLETE record, never an error.
func BuildRecord(doc domain.RawDocument, text string, table *foodtable.Table) domain.RecipeRecord {
	sections := SplitSections(text)
	parsed := ParseIngredientLines(sections.IngredientsText)

	ingredients := parsed.Valid
	if len(ingredients) > maxIngredientLines {
		ingredients = ingredients[:maxIngredientLines]
	}

	steps := LinesToList(sections.StepsText)
	if len(steps) == 0 && strings.TrimSpace(sections.StepsText) != "" {
		for _, l := range strings.Split(sections.StepsText, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				steps = append(steps, l)
			}
		}
	}
	if len(steps) > maxStepLines {
		steps = steps[:maxStepLines]
	}

	portions := ParsePortions(doc.Name, sections.IngredientsText, sections.StepsText)

	status := sections.Status
	notes := sections.Notes
	if parsed.RawFallback {
		notes = append(notes, domain.NoteIngredientGrammarFallback)
	}
	if len(parsed.Invalid) > 0 {
		if len(ingredients) > 0 && len(steps) > 0 {
			status = domain.ParseStatusPartial
			notes = append(notes, domain.NotePartialInvalidIngredients)
		} else {
			status = domain.ParseStatusIncomplete
			notes = append(notes, domain.NoteInvalidIngredientLines)
		}
	}
	if len(ingredients) == 0 || len(steps) == 0 {
		status = domain.ParseStatusIncomplete
		if len(ingredients) == 0 {
			notes = append(notes, domain.NoteNoValidIngredients)
		}
		if len(steps) == 0 {
			notes = append(notes, domain.NoteNoSteps)
		}
	}

	nutrition := domain.NutritionTotals{Portions: portions}
	if status == domain.ParseStatusConfident {
		nutrition = ComputeNutrition(table, ingredients, portions)
	}

	fullPath := doc.FullPath
	if fullPath == "" {
		fullPath = doc.Name
	}

	return domain.RecipeRecord{
		ID:                 uuid.New(),
		FileID:             doc.ID,
		Title:              doc.Name,
		NormalizedTitle:    NormalizeTitle(doc.Name),
		TitleKey:           TitleKey(doc.Name),
		MimeType:           doc.MimeType,
		WebViewLink:        doc.WebViewLink,
		FullPath:           fullPath,
		CreatedTime:        doc.CreatedTime,
		ModifiedTime:       doc.ModifiedTime,
		IngredientsRaw:     sections.IngredientsText,
		StepsRaw:           sections.StepsText,
		Ingredients:        ingredients,
		Steps:              steps,
		IngredientsInvalid: parsed.Invalid,
		ParseStatus:        status,
		ParseNotes:         notes,
		NutritionTotals:    nutrition,
		CreatedAt:          time.Now().UTC(),
	}
}

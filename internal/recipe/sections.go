// Package recipe implements the document analysis pipeline: locating the
// ingredients and steps blocks, validating ingredient lines, resolving
// quantities to grams and estimating nutrition. Recipe documents are
// free-form text in French or English, so every stage degrades gracefully
// and records what it could not recover as parse notes.
package recipe

import (
	"regexp"
	"strings"

	"recettes/internal/domain"
)

// Header spellings seen in the corpus, including spaced-out letterings from
// PDF extraction.
var ingredientHeaderRES = compileAll([]string{
	`ingr[ée]dients?`,
	`ingredients?`,
	`liste d[ei]s? ingr`,
	`liste des ingrédients`,
	`composition`,
	`ingr[ée]dients?\s*\(`,
	`ingredients?\s*\(`,
	`pour la (p[aâ]te|garniture|sauce)`,
	`pour les? (p[aâ]tes?|garniture|sauce)`,
	`i\s*n\s*g\s*r\s*[ée]?\s*d\s*i\s*e\s*n\s*t\s*s?`,
})

var stepHeaderRES = compileAll([]string{
	`pr[ée]paration`,
	`[ée]tapes?`,
	`[ée]tapes?\s+pas\s+[aà]\s+pas`,
	`m[ée]thode`,
	`r[ée]alisation`,
	`mode op[ée]ratoire`,
	`cuisson`,
	`process`,
	`method(e)?`,
	`instructions?`,
	`directions?`,
	`proc[ée]dure`,
	`steps?`,
	`h(?:ow)?\s*to\s*(?:make|cook)`,
	`m\s*e\s*t\s*h\s*o\s*d`,
	`p\s*r\s*[ée]?\s*p\s*a\s*r\s*a\s*t\s*i\s*o\s*n`,
})

var stepMarkerRE = regexp.MustCompile(`(?i)^\s*(\d+[\)\.]|\d+\s+\w|[ée]tape\b|step\b)`)

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

// SplitSections locates the ingredients and steps blocks inside raw document
// text. When one or both headers are missing it falls back to positional
// heuristics: text before a steps header counts as ingredients, and the first
// numbered or "étape"/"step" line starts the steps block. Failure to find a
// block yields an empty string and a note, never an error.
func SplitSections(text string) domain.SectionSplit {
	if text == "" {
		return domain.SectionSplit{
			Status: domain.ParseStatusIncomplete,
			Notes:  []string{domain.NoteEmptyText},
		}
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	iIng := findHeader(lines, ingredientHeaderRES, 0)
	stepStart := 0
	if iIng >= 0 {
		stepStart = iIng + 1
	}
	iStep := findHeader(lines, stepHeaderRES, stepStart)

	var notes []string
	if iIng < 0 {
		notes = append(notes, domain.NoteMissingIngredientsHeader)
	}
	if iStep < 0 {
		notes = append(notes, domain.NoteMissingStepsHeader)
	}

	var ingredientsTxt, stepsTxt string
	switch {
	case iIng < 0 && iStep >= 0:
		ingredientsTxt = joinBlock(lines[:iStep])
		stepsTxt = joinBlock(lines[iStep+1:])
		notes = append(notes, domain.NoteIngredientsFallbackBefore)
	case iIng >= 0 && iStep < 0:
		block := lines[iIng+1:]
		ingredientsTxt = joinBlock(block)
		if idx := findFirstStepMarker(block); idx >= 0 {
			ingredientsTxt = joinBlock(block[:idx])
			stepsTxt = joinBlock(block[idx:])
			notes = append(notes, domain.NoteStepsFallbackDetected)
		}
	case iIng < 0 && iStep < 0:
		idx := findFirstStepMarker(lines)
		if idx < 0 {
			return domain.SectionSplit{Status: domain.ParseStatusIncomplete, Notes: notes}
		}
		ingredientsTxt = joinBlock(lines[:idx])
		stepsTxt = joinBlock(lines[idx:])
		notes = append(notes, domain.NoteFallbackNoHeaders)
	default:
		if iStep <= iIng {
			return domain.SectionSplit{Status: domain.ParseStatusIncomplete, Notes: notes}
		}
		ingredientsTxt = joinBlock(lines[iIng+1 : iStep])
		stepsTxt = joinBlock(lines[iStep+1:])
	}

	status := domain.ParseStatusIncomplete
	if ingredientsTxt != "" && stepsTxt != "" {
		status = domain.ParseStatusConfident
	}
	if ingredientsTxt == "" {
		notes = append(notes, domain.NoteEmptyIngredientsBlock)
	}
	if stepsTxt == "" {
		notes = append(notes, domain.NoteEmptyStepsBlock)
	}

	return domain.SectionSplit{
		IngredientsText: ingredientsTxt,
		StepsText:       stepsTxt,
		Status:          status,
		Notes:           notes,
	}
}

func findHeader(lines []string, patterns []*regexp.Regexp, start int) int {
	for i := start; i < len(lines); i++ {
		for _, re := range patterns {
			if re.MatchString(lines[i]) {
				return i
			}
		}
	}
	return -1
}

func findFirstStepMarker(lines []string) int {
	for i, line := range lines {
		if stepMarkerRE.MatchString(line) {
			return i
		}
	}
	return -1
}

func joinBlock(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

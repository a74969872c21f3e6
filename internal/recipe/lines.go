package recipe

import (
	"regexp"
	"strings"
)

const maxRawFallbackLines = 80

// Unicode vulgar fractions are rewritten to ASCII before grammar matching.
var fractionASCII = map[string]string{
	"¼": "1/4", "½": "1/2", "¾": "3/4",
	"⅓": "1/3", "⅔": "2/3",
	"⅛": "1/8", "⅜": "3/8", "⅝": "5/8", "⅞": "7/8",
}

// Strict ingredient grammar: quantity required, unit optional, item required.
var ingredientLineRE = regexp.MustCompile(
	`(?i)^\s*(?P<qty>(` +
		`\d+([.,]\d+)?|\d+/\d+|` +
		`\d+\s?x\s?\d+([.,]\d+)?|` +
		`\d+\s?[-–]\s?\d+([.,]\d+)?|` +
		`[¼½¾⅓⅔⅛⅜⅝⅞]` +
		`))\s*` +
		`(?P<unit>g|gr|kg|ml|l|cl|dl|` +
		`cs|càs|càc|cc|` +
		`c\.?\s?à\s?s\.?|c\.?\s?à\s?c\.?|` +
		`cuil(?:l[èe]re)?s?\s?(?:soupe|cafe|café)?|` +
		`pinc(?:e|ée)?s?|tranches?|gousses?|boites?|boîtes?|sachets?|verres?|` +
		`unit(?:és)?|cups?|tbsp|tsp|tablespoons?|teaspoons?|oz|lb|lbs)?\s+` +
		`(?P<item>.+)$`)

var qtyOnlyRE = regexp.MustCompile(
	`(?i)^\s*(\d+([.,]\d+)?|\d+/\d+|\d+\s?x\s?\d+([.,]\d+)?|[¼½¾⅓⅔⅛⅜⅝⅞])\s*` +
		`(g|gr|kg|ml|l|cl|dl|cs|càs|càc|cc|` +
		`c\.?\s?à\s?s\.?|c\.?\s?à\s?c\.?|` +
		`cuil(?:l[èe]re)?s?\s?(?:soupe|cafe|café)?|` +
		`pinc(?:e|ée)?s?|tranches?|gousses?|boites?|boîtes?|sachets?|verres?|` +
		`unit(?:és)?|cups?|tbsp|tsp|tablespoons?|teaspoons?|oz|lb|lbs)?\s*$`)

// Lines starting with cooking verbs are instructions that leaked into the
// ingredients block.
var cookingVerbRE = regexp.MustCompile(
	`(?i)\b(ajout(e|er)|m[ée]lang(e|er)|cuir(e|e)|po[êe]l(er|e)|r[ôo]tir|` +
		`fai(re|tes)|met(te|tre)|incorpor(er|e)|r[ée]server|chauffer|` +
		`saisir|dorer|bouillir|sauter|verser|add|mix|cook|bake|fry)\b`)

var skipIngredientLineRE = regexp.MustCompile(
	`(?i)^(pour|for)\b|^(garniture|sauce|p[âa]te)\b|^ingredients?\b|^ingr[ée]dients?\b|` +
		`^(serves|serve|yield|makes)\b|^note\b|^optional\b|^assaisonnement\b`)

var skipSeasoningRE = regexp.MustCompile(
	`(?i)^(sel|poivre|sel et poivre|sel/poivre|au go[uû]t|selon le go[uû]t)$`)

var (
	bulletPrefixRE    = regexp.MustCompile(`^[-•*+]+\s*`)
	listPrefixRE      = regexp.MustCompile(`^[-•*+\d.\)\s]+`)
	digitRE           = regexp.MustCompile(`\d`)
	multiplySpacingRE = regexp.MustCompile(`(\d)\s*[xX]\s*(\d)`)
	glueFractionRE    = regexp.MustCompile(`(\d)([¼½¾⅓⅔⅛⅜⅝⅞])`)
	parenQtyRE        = regexp.MustCompile(`^\s*(\d+)\s*\(([^)]+)\)\s*(.+)$`)
)

// ParsedIngredients is the outcome of validating an ingredients block.
// RawFallback is set when the grammar rejected every line and the block was
// kept verbatim instead.
type ParsedIngredients struct {
	Valid       []string
	Invalid     []string
	RawFallback bool
}

// ParseIngredientLines validates each line of an ingredients block against
// the quantity grammar. Sub-section headers, seasoning mentions and serving
// notes are skipped; quantities alone on a line are merged with the line
// below; lines starting with a cooking verb or failing the grammar are
// reported as invalid. When nothing validates, the raw lines are returned as
// a degraded result rather than losing the block.
func ParseIngredientLines(block string) ParsedIngredients {
	var rawLines []string
	for _, raw := range strings.Split(block, "\n") {
		rawLines = append(rawLines, strings.TrimSpace(bulletPrefixRE.ReplaceAllString(raw, "")))
	}
	var lines []string
	for _, l := range rawLines {
		if l != "" {
			lines = append(lines, l)
		}
	}

	var valid, invalid []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.HasSuffix(line, ":") && !digitRE.MatchString(line) {
			continue
		}
		if skipIngredientLineRE.MatchString(line) || skipSeasoningRE.MatchString(line) {
			continue
		}

		// A quantity alone on its line belongs with the next line.
		if qtyOnlyRE.MatchString(line) && i+1 < len(lines) {
			next := lines[i+1]
			if !skipIngredientLineRE.MatchString(next) && !digitRE.MatchString(next) {
				line = line + " " + next
				i++
			}
		}

		line = normalizeQuantityLine(line)
		if cookingVerbRE.MatchString(line) {
			invalid = append(invalid, line)
			continue
		}
		m := ingredientLineRE.FindStringSubmatch(line)
		if m == nil || m[ingredientLineRE.SubexpIndex("item")] == "" {
			invalid = append(invalid, line)
			continue
		}
		valid = append(valid, line)
	}

	if len(valid) == 0 && len(lines) > 0 {
		if len(lines) > maxRawFallbackLines {
			lines = lines[:maxRawFallbackLines]
		}
		return ParsedIngredients{Valid: lines, RawFallback: true}
	}
	return ParsedIngredients{Valid: valid, Invalid: invalid}
}

// normalizeQuantityLine canonicalizes dashes, "x" multiplications, glued and
// unicode fractions, and unwraps "2 (200 g) tomates" style parentheses.
func normalizeQuantityLine(line string) string {
	line = strings.NewReplacer("–", "-", "—", "-").Replace(line)
	line = multiplySpacingRE.ReplaceAllString(line, "$1 x $2")
	line = glueFractionRE.ReplaceAllString(line, "$1 $2")
	for from, to := range fractionASCII {
		line = strings.ReplaceAll(line, from, to)
	}
	if m := parenQtyRE.FindStringSubmatch(line); m != nil {
		line = m[1] + " " + m[2] + " " + m[3]
	}
	return line
}

// LinesToList strips bullets, numbering and surrounding whitespace from each
// line of a block and drops empties.
func LinesToList(block string) []string {
	var out []string
	for _, l := range strings.Split(block, "\n") {
		l = strings.TrimSpace(listPrefixRE.ReplaceAllString(l, ""))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

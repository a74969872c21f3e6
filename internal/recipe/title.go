package recipe

import (
	"sort"
	"strings"

	"recettes/internal/textnorm"
)

// French articles and connectors ignored when building deduplication keys.
var titleStopWords = map[string]struct{}{
	"de": {}, "du": {}, "des": {}, "la": {}, "le": {}, "les": {},
	"au": {}, "aux": {}, "a": {}, "et": {}, "en": {},
	"d": {}, "l": {}, "un": {}, "une": {}, "avec": {}, "sans": {},
}

// NormalizeTitle lowercases a title, folds accents and collapses every
// non-alphanumeric run to a single space.
func NormalizeTitle(s string) string {
	return textnorm.Normalize(s)
}

// TitleKey builds the order-insensitive deduplication key of a title: the
// normalized tokens minus stop words, sorted and rejoined. "Poulet au Curry"
// and "Curry de Poulet" share the same key.
func TitleKey(s string) string {
	base := NormalizeTitle(s)
	if base == "" {
		return ""
	}
	var tokens []string
	for _, t := range strings.Fields(base) {
		if _, stop := titleStopWords[t]; !stop {
			tokens = append(tokens, t)
		}
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

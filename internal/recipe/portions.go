package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultPortions covers recipes that never state a serving count; the corpus
// convention is two adults and one child.
const defaultPortions = 3

var portionsRE = regexp.MustCompile(`pour\s+(\d+)\s*(pers|personnes?)`)

// ParsePortions extracts a serving count from the title and both raw blocks,
// matching phrases like "pour 4 personnes". Falls back to defaultPortions.
func ParsePortions(title, ingredientsRaw, stepsRaw string) int {
	text := strings.ToLower(title + " " + ingredientsRaw + " " + stepsRaw)
	if m := portionsRE.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return defaultPortions
}

package recipe

import (
	"regexp"
	"strconv"
	"strings"

	"recettes/internal/domain"
	"recettes/internal/foodtable"
)

// Gram weights assumed for household measures. A tablespoon of oil weighs
// less than one of flour or sugar, hence the oil-specific values.
const (
	tablespoonGramsOil     = 15.0
	tablespoonGramsDefault = 12.0
	teaspoonGrams          = 5.0
	cupMillilitersOil      = 220.0
	cupMillilitersDefault  = 240.0
	pieceGramsSlice        = 30.0
	pieceGramsClove        = 5.0
	defaultPortionGrams    = 100.0
)

// Word units come before the one-letter g and l alternatives: alternation is
// leftmost-first, so a bare g listed early would swallow the g of "gousses".
var quantityRE = regexp.MustCompile(
	`(?i)(?P<num>(\d+[.,]?\d*|\d+\s*/\s*\d+|[½¼¾⅓⅔]))\s*` +
		`(?P<unit>grammes?|gousses?|tranches?|pi[eè]ces?|cuill(?:ere|ère)s?\s?(?:soupe|cafe|café)?|` +
		`pinc(?:e|ée)s?|boi(?:te|îte)s?|sachets?|verres?|tasses?|cups?|càs|càc|ml|cl|cs|cc|g|l)`)

var pieceUnitRE = regexp.MustCompile(`pi[eè]ces?|gousses?|tranches?`)

// ResolveQuantity converts the quantity expressed in an ingredient line to
// grams, using the matched table row for per-unit weights and oil detection.
// Lines without a recognizable quantity fall back to one table unit, or 100 g.
func ResolveQuantity(line string, row domain.FoodRow) float64 {
	m := quantityRE.FindStringSubmatch(line)
	if m == nil {
		if row.Unit == domain.FoodUnitPiece {
			if row.GramsPerUnit > 0 {
				return row.GramsPerUnit
			}
			return defaultPortionGrams
		}
		return defaultPortionGrams
	}

	val := parseNumber(m[quantityRE.SubexpIndex("num")])
	unit := strings.ToLower(m[quantityRE.SubexpIndex("unit")])
	unit = strings.ReplaceAll(unit, "grammes", "g")
	unit = strings.ReplaceAll(unit, "càs", "cs")
	unit = strings.ReplaceAll(unit, "càc", "cc")

	oil := foodtable.OilLike(row)

	switch {
	case unit == "cs" || unit == "cuillère soupe" || unit == "cuillere soupe":
		if oil {
			return val * tablespoonGramsOil
		}
		return val * tablespoonGramsDefault
	case unit == "cc" || unit == "cuillère cafe" || unit == "cuillere cafe" || unit == "café":
		return val * teaspoonGrams
	case unit == "ml":
		return val
	case unit == "cl":
		return val * 10
	case unit == "l":
		return val * 1000
	case pieceUnitRE.MatchString(unit):
		grams := row.GramsPerUnit
		if grams == 0 {
			if strings.Contains(unit, "tranche") {
				grams = pieceGramsSlice
			} else {
				grams = pieceGramsClove
			}
		}
		return val * grams
	case unit == "cup" || unit == "cups" || unit == "tasse" || unit == "tasses" ||
		unit == "verre" || unit == "verres":
		if oil {
			return val * cupMillilitersOil
		}
		return val * cupMillilitersDefault
	case unit == "g" || unit == "gramme":
		return val
	default:
		return val * defaultPortionGrams
	}
}

func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if ascii, ok := fractionASCII[s]; ok {
		s = ascii
	}
	if strings.Contains(s, "/") {
		parts := strings.SplitN(s, "/", 2)
		a, errA := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errA != nil || errB != nil || b == 0 {
			return 0
		}
		return a / b
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

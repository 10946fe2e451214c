package intake

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/korjavin/nutricheck/internal/nutrient"
)

// ParseProductType matches s against "solid" and "liquid" ignoring case.
// Surrounding white space is significant: " solid" is rejected.
func ParseProductType(s string) (nutrient.ProductType, error) {
	switch cases.Lower(language.Und).String(s) {
	case "solid":
		return nutrient.Solid, nil
	case "liquid":
		return nutrient.Liquid, nil
	}
	return 0, ErrInvalidProductType
}

// ParseNumeric parses a per-serving amount. It reports false when the text
// has no leading number, or when the number is NaN, negative or zero.
//
// Zero is rejected on purpose so that "0" fails exactly like "-5" or "abc".
func ParseNumeric(s string) (float64, bool) {
	v, ok := parseLeadingFloat(s)
	if !ok || math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	return v, true
}

// parseLeadingFloat skips leading white space and parses the longest
// prefix of s that forms a decimal literal:
//
//	[+-] ( "Infinity" | digits [ "." [digits] ] | "." digits ) [ (e|E) [+-] digits ]
//
// Anything after the literal is ignored, so "12g" yields 12. Hex, octal
// and underscore forms are not recognised: "0x10" yields 0.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, isSpace)

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		if neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0, false
	}

	// The exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		// Out-of-range literals still carry ±Inf or ±0.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

package nutrient

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxFracDigits is enough to hold the exact decimal expansion of any float64.
const maxFracDigits = 1074

// FormatFixed renders x with exactly digits fractional digits.
//
// Rounding is done on the exact binary value of x, with ties going away
// from zero, so 0.125 renders as "0.13" while 1.005 (stored as
// 1.00499999...) renders as "1.00". A negative value that rounds to zero
// keeps its sign ("-0.00"); negative zero does not. Non-finite values
// render as "NaN", "Infinity" and "-Infinity", and magnitudes of 1e21 or
// more fall back to the shortest exponent form.
func FormatFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.Abs(x) >= 1e21:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	digits = min(max(digits, 0), maxFracDigits-1)

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	exact := new(big.Float).SetFloat64(x).Text('f', maxFracDigits)
	intPart, frac, _ := strings.Cut(exact, ".")

	kept := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		kept = incrementDecimal(kept)
	}

	n := len(kept) - digits
	if digits == 0 {
		return sign + string(kept)
	}
	return sign + string(kept[:n]) + "." + string(kept[n:])
}

// incrementDecimal adds one to the decimal number held in b.
func incrementDecimal(b []byte) []byte {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return b
		}
		b[i] = '0'
	}
	return append([]byte{'1'}, b...)
}

// String renders the comparison as a single report line.
func (c Comparison) String() string {
	return fmt.Sprintf("%s: Difference = %s, Difference in %% = %s%%",
		c.Name, FormatFixed(c.Difference, 2), FormatFixed(c.Percentage, 2))
}

// WriteReport writes one line per comparison to w.
func WriteReport(w io.Writer, comparisons []Comparison) error {
	for _, c := range comparisons {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return fmt.Errorf("write %s: %w", c.Name, err)
		}
	}
	return nil
}

// Package format renders report values for display. Rounding happens here and
// nowhere else; computed series keep full float precision.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed returns amount rounded half away from zero to places decimals, without
// separators (e.g., "-7.10").
func Fixed(amount float64, places int32) string {
	return decimal.NewFromFloat(amount).StringFixed(places)
}

// Number returns amount rounded to places decimals with thousands separators
// (e.g., "-1,234.56" or "2,409,237").
func Number(amount float64, places int32) string {
	fixed := Fixed(amount, places)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, decPart, hasDec := strings.Cut(fixed, ".")
	intPart = groupThousands(intPart)
	if sign != "" && isZeroDigits(intPart) && isZeroDigits(decPart) {
		sign = ""
	}

	if hasDec {
		return sign + intPart + "." + decPart
	}
	return sign + intPart
}

// Currency returns Number prefixed with a currency code (e.g., "PHP 2,676,930.00").
func Currency(code string, amount float64, places int32) string {
	if code == "" {
		return Number(amount, places)
	}
	return code + " " + Number(amount, places)
}

// Percent renders a fractional rate as a whole-number percentage (0.1 -> "10%").
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(0) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var builder strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}

func isZeroDigits(s string) bool {
	return strings.Trim(s, "0,") == ""
}

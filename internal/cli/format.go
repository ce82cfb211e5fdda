// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount with comma separators and no
// cents. e.g., 1234567.89 -> "$1,234,568", -500 -> "-$500"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatMoneyShort formats a dollar amount with a magnitude suffix for
// chart labels. e.g., 1234567 -> "$1.2M"
func FormatMoneyShort(v float64) string {
	if v < 0 {
		return "-" + FormatMoneyShort(-v)
	}
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 10_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatRate formats a percent-units rate (7.0 means 7%).
func FormatRate(r float64) string {
	return fmt.Sprintf("%.1f%%", r)
}

// FormatFraction formats a 0-1 fraction as a percentage string.
// e.g., 0.934 -> "93.4%"
func FormatFraction(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatYearsDelta formats a retirement-age shift with an explicit
// sign. e.g., 2 -> "+2 years", 0 -> "no change"
func FormatYearsDelta(years int) string {
	if years == 0 {
		return "no change"
	}
	unit := "years"
	if years == 1 || years == -1 {
		unit = "year"
	}
	return fmt.Sprintf("%+d %s", years, unit)
}

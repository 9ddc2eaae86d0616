package ui

import (
	"strconv"
	"strings"
)

// formatLuas renders an area in m² with Indonesian digit grouping:
// 12345.5 becomes "12.345,5". Accepts float64 or *float64 so templates can
// feed it nullable columns; nil means the source row had no usable number.
func formatLuas(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return groupDigits(t, 2)
	case *float64:
		if t == nil {
			return "-"
		}
		return groupDigits(*t, 2)
	case int:
		return groupDigits(float64(t), 2)
	default:
		return "-"
	}
}

// rupiah renders a ledger value as whole rupiah: 1234567 becomes
// "Rp 1.234.567".
func rupiah(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return "Rp " + groupDigits(t, 0)
	case *float64:
		if t == nil {
			return "-"
		}
		return "Rp " + groupDigits(*t, 0)
	default:
		return "-"
	}
}

// groupDigits formats v with dot thousands separators and a comma decimal
// mark, trimming trailing zero decimals.
func groupDigits(v float64, maxDecimals int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	text := strconv.FormatFloat(v, 'f', maxDecimals, 64)
	intPart, fracPart, _ := strings.Cut(text, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

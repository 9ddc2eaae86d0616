package asset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reNumericToken = regexp.MustCompile(`-?\d+(\.\d+)?`)
	reCurrencyJunk = regexp.MustCompile(`[Rp.,\s]`)
	reNonNumeric   = regexp.MustCompile(`[^0-9.\-]`)
	reFourDigits   = regexp.MustCompile(`\d{4}`)
	reLeadingInt   = regexp.MustCompile(`^-?\d+`)
)

// NormalizeArea converts a raw area cell to square meters. Text cells cover
// the formats seen in source files: plain numbers, duration-like renderings
// ("6153:00:00" means 6153), and values with trailing units ("1500 m2").
func NormalizeArea(c Cell) (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.NumVal, true
	case CellText:
		s := strings.TrimSpace(c.TextVal)
		if s == "" {
			return 0, false
		}
		if i := strings.IndexByte(s, ':'); i >= 0 {
			s = s[:i]
		}
		token := reNumericToken.FindString(s)
		if token == "" {
			return 0, false
		}
		return parseFloat(token)
	}
	return 0, false
}

// NormalizeCurrency converts rupiah renderings like "Rp 1.250.000" to a
// float. The '.' is a thousands separator in these files, so the currency
// marker and separators are stripped before the numeric pass.
func NormalizeCurrency(c Cell) (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.NumVal, true
	case CellText:
		s := strings.TrimSpace(c.TextVal)
		if s == "" {
			return 0, false
		}
		s = reCurrencyJunk.ReplaceAllString(s, "")
		s = reNonNumeric.ReplaceAllString(s, "")
		if s == "" {
			return 0, false
		}
		return parseFloat(s)
	}
	return 0, false
}

// NormalizeYear extracts a plausible year. Numeric cells are truncated as-is;
// text must contain a four-digit run inside [1900, 2100].
func NormalizeYear(c Cell) (int, bool) {
	switch c.Kind {
	case CellNumber:
		return int(c.NumVal), true
	case CellText:
		m := reFourDigits.FindString(c.TextVal)
		if m == "" {
			return 0, false
		}
		y, err := strconv.Atoi(m)
		if err != nil || y < 1900 || y > 2100 {
			return 0, false
		}
		return y, true
	}
	return 0, false
}

// NormalizeCount parses small integer fields (row numbers, parcel counts).
// Numeric cells are truncated; text must start with an integer.
func NormalizeCount(c Cell) (int, bool) {
	switch c.Kind {
	case CellNumber:
		return int(c.NumVal), true
	case CellText:
		m := reLeadingInt.FindString(strings.TrimSpace(c.TextVal))
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

package parse

import (
	"strings"

	"asetfilter/domain/asset"
)

// ColumnMapping maps 0-based column positions to canonical fields. Each field
// binds through at most one position and each position carries at most one
// field.
type ColumnMapping map[int]asset.CanonicalField

// HasSecondaryHeader reports whether the row directly below the header is the
// continuation of a two-row header layout, recognized by its letak/alamat
// sub-labels.
func HasSecondaryHeader(row []asset.Cell) bool {
	text := strings.ToUpper(joinRowText(row))
	return strings.Contains(text, "LETAK") && strings.Contains(text, "ALAMAT")
}

// MapColumns resolves header labels to canonical fields. Candidates per
// position are the primary header text plus, in two-row layouts, the
// secondary header text. Exact label matches bind first across the whole
// sheet, then substring resolutions fill the remaining positions, both in
// position order. A position whose resolved field is already bound stays
// unmapped, so the mapping is reproducible on identical input.
func MapColumns(header, secondary []asset.Cell, twoRow bool) ColumnMapping {
	width := len(header)
	if twoRow && len(secondary) > width {
		width = len(secondary)
	}

	mapping := make(ColumnMapping)
	bound := make(map[asset.CanonicalField]struct{})

	resolved := make(map[int]bool, width)
	for pos := 0; pos < width; pos++ {
		field, ok := resolveExact(candidatesAt(header, secondary, twoRow, pos))
		if !ok {
			continue
		}
		resolved[pos] = true
		if _, taken := bound[field]; taken {
			continue
		}
		mapping[pos] = field
		bound[field] = struct{}{}
	}

	for pos := 0; pos < width; pos++ {
		if resolved[pos] {
			continue
		}
		field, ok := resolveSubstring(candidatesAt(header, secondary, twoRow, pos))
		if !ok {
			continue
		}
		if _, taken := bound[field]; taken {
			continue
		}
		mapping[pos] = field
		bound[field] = struct{}{}
	}

	return mapping
}

// candidatesAt collects the non-blank label candidates for one position in
// priority order: primary header first, then the secondary header when the
// two-row layout was detected.
func candidatesAt(header, secondary []asset.Cell, twoRow bool, pos int) []string {
	var candidates []string
	if pos < len(header) {
		if label := header[pos].Trimmed(); label != "" {
			candidates = append(candidates, label)
		}
	}
	if twoRow && pos < len(secondary) {
		if label := secondary[pos].Trimmed(); label != "" {
			candidates = append(candidates, label)
		}
	}
	return candidates
}

func resolveExact(candidates []string) (asset.CanonicalField, bool) {
	for _, candidate := range candidates {
		for _, lm := range asset.LabelMappings {
			if candidate == lm.Label {
				return lm.Field, true
			}
		}
	}
	return "", false
}

// resolveSubstring matches case-insensitively in both directions, walking the
// label table in its declared order so ambiguous labels resolve the same way
// on every run.
func resolveSubstring(candidates []string) (asset.CanonicalField, bool) {
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		for _, lm := range asset.LabelMappings {
			label := strings.ToLower(lm.Label)
			if strings.Contains(lower, label) || strings.Contains(label, lower) {
				return lm.Field, true
			}
		}
	}
	return "", false
}

package asset

import "strings"

// StatusDelimiter joins the parts of a composite status string.
const StatusDelimiter = " | "

// statusSentinels mean "intentionally blank" and never count as status.
var statusSentinels = map[string]struct{}{
	"NAN":  {},
	"NONE": {},
	"-":    {},
}

// CombineStatus merges status values into one composite string: trimmed,
// uppercased, sentinels dropped, exact duplicates removed with first
// occurrence order kept. All-empty input yields "".
func CombineStatus(values ...string) string {
	seen := make(map[string]struct{}, len(values))
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s := strings.ToUpper(strings.TrimSpace(v))
		if s == "" {
			continue
		}
		if _, sentinel := statusSentinels[s]; sentinel {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		parts = append(parts, s)
	}
	return strings.Join(parts, StatusDelimiter)
}

// SplitStatus breaks a composite status back into its parts, dropping
// sentinels and blanks. Used when deriving filter choices from stored rows.
func SplitStatus(combined string) []string {
	if combined == "" {
		return nil
	}
	var parts []string
	for _, raw := range strings.Split(combined, "|") {
		s := strings.ToUpper(strings.TrimSpace(raw))
		if s == "" {
			continue
		}
		if _, sentinel := statusSentinels[s]; sentinel {
			continue
		}
		parts = append(parts, s)
	}
	return parts
}

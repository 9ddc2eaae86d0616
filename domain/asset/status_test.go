package asset

import (
	"strings"
	"testing"
)

func TestCombineStatus(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "duplicates collapse keeping first occurrence order",
			values: []string{"TERMANFAATKAN", "TERMANFAATKAN", "TKD", "", ""},
			want:   "TERMANFAATKAN | TKD",
		},
		{
			name:   "lowercase and padding normalized",
			values: []string{" hak pakai ", "termanfaatkan"},
			want:   "HAK PAKAI | TERMANFAATKAN",
		},
		{
			name:   "sentinels excluded",
			values: []string{"-", "nan", "None", "TKD"},
			want:   "TKD",
		},
		{
			name:   "all empty yields empty composite",
			values: []string{"", "", "", "", ""},
			want:   "",
		},
		{
			name:   "field order preserved",
			values: []string{"HAK PAKAI", "TERMANFAATKAN", "TKD", "BELUM TERPETAKAN", "BANGUNAN"},
			want:   "HAK PAKAI | TERMANFAATKAN | TKD | BELUM TERPETAKAN | BANGUNAN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombineStatus(tt.values...); got != tt.want {
				t.Errorf("CombineStatus(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestSplitStatus(t *testing.T) {
	tests := []struct {
		combined string
		want     []string
	}{
		{"HAK PAKAI | TERMANFAATKAN", []string{"HAK PAKAI", "TERMANFAATKAN"}},
		{"TKD", []string{"TKD"}},
		{"", nil},
		{"- | BANGUNAN | NAN", []string{"BANGUNAN"}},
	}

	for _, tt := range tests {
		got := SplitStatus(tt.combined)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("SplitStatus(%q) = %v, want %v", tt.combined, got, tt.want)
		}
	}
}

func TestCombineSplitRoundTrip(t *testing.T) {
	combined := CombineStatus("Hak Pakai", "TERMANFAATKAN", "tkd")
	got := SplitStatus(combined)
	want := []string{"HAK PAKAI", "TERMANFAATKAN", "TKD"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAssetPage(t *testing.T) {
	tests := []struct {
		name          string
		filteredCount int
		page          int
		perPage       int
		wantPages     int
		wantHasPrev   bool
		wantHasNext   bool
	}{
		{
			name:          "first page of many",
			filteredCount: 45,
			page:          1,
			perPage:       20,
			wantPages:     3,
			wantHasPrev:   false,
			wantHasNext:   true,
		},
		{
			name:          "middle page",
			filteredCount: 45,
			page:          2,
			perPage:       20,
			wantPages:     3,
			wantHasPrev:   true,
			wantHasNext:   true,
		},
		{
			name:          "last page",
			filteredCount: 45,
			page:          3,
			perPage:       20,
			wantPages:     3,
			wantHasPrev:   true,
			wantHasNext:   false,
		},
		{
			name:          "exact multiple",
			filteredCount: 40,
			page:          2,
			perPage:       20,
			wantPages:     2,
			wantHasPrev:   true,
			wantHasNext:   false,
		},
		{
			name:          "no results",
			filteredCount: 0,
			page:          1,
			perPage:       20,
			wantPages:     0,
			wantHasPrev:   false,
			wantHasNext:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAssetPage(nil, 100, tt.filteredCount, tt.page, tt.perPage)

			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
		})
	}
}

func TestPageNumbersElidesGaps(t *testing.T) {
	p := AssetPage{Page: 10, TotalPages: 20}
	got := p.PageNumbers()
	want := []int{1, 0, 8, 9, 10, 11, 12, 0, 20}

	if len(got) != len(want) {
		t.Fatalf("PageNumbers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PageNumbers() = %v, want %v", got, want)
		}
	}
}

func TestPageNumbersSmall(t *testing.T) {
	p := AssetPage{Page: 1, TotalPages: 3}
	got := p.PageNumbers()
	want := []int{1, 2, 3}

	if len(got) != len(want) {
		t.Fatalf("PageNumbers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PageNumbers() = %v, want %v", got, want)
		}
	}
}

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{Page: -3, SortOrder: "sideways"}
	q.Normalize(20)

	if q.Page != 1 {
		t.Errorf("Page = %d, want 1", q.Page)
	}
	if q.PerPage != 20 {
		t.Errorf("PerPage = %d, want 20", q.PerPage)
	}
	if q.SortOrder != SortAsc {
		t.Errorf("SortOrder = %q, want %q", q.SortOrder, SortAsc)
	}
	if q.SortBy != "id" {
		t.Errorf("SortBy = %q, want id", q.SortBy)
	}

	q2 := ListQuery{Page: 4, PerPage: 50, SortBy: "luas", SortOrder: SortDesc}
	q2.Normalize(20)

	if q2.Page != 4 || q2.PerPage != 50 || q2.SortBy != "luas" || q2.SortOrder != SortDesc {
		t.Errorf("Normalize changed explicit values: %+v", q2)
	}
	if q2.Offset() != 150 {
		t.Errorf("Offset() = %d, want 150", q2.Offset())
	}
}

func TestUploadLifecycle(t *testing.T) {
	u := NewUpload("aset_2023.xlsx")

	if u.Status != UploadStatusProcessing {
		t.Errorf("new upload status = %q, want %q", u.Status, UploadStatusProcessing)
	}
	if u.ID == uuid.Nil {
		t.Error("new upload has no ID")
	}

	u.MarkSuccess(1234)
	if u.Status != UploadStatusSuccess || u.RecordsCount != 1234 {
		t.Errorf("after MarkSuccess: %+v", u)
	}
	if u.Error() != "" {
		t.Errorf("Error() = %q, want empty", u.Error())
	}

	u2 := NewUpload("broken.xlsx")
	u2.MarkFailed("header row not found")
	if u2.Status != UploadStatusFailed {
		t.Errorf("after MarkFailed status = %q", u2.Status)
	}
	if u2.Error() != "header row not found" {
		t.Errorf("Error() = %q", u2.Error())
	}
}

func TestAssetStatusList(t *testing.T) {
	a := Asset{StatusCombined: "BERSERTIFIKAT | TERMANFAATKAN"}
	got := a.StatusList()

	if len(got) != 2 || got[0] != "BERSERTIFIKAT" || got[1] != "TERMANFAATKAN" {
		t.Errorf("StatusList() = %v", got)
	}

	empty := Asset{}
	if empty.StatusList() != nil {
		t.Errorf("StatusList() on empty = %v, want nil", empty.StatusList())
	}
}

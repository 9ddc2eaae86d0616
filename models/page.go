package models

// AssetPage is one page of filtered results plus the counts the views render.
// Field names follow the JSON contract of the filter endpoint.
type AssetPage struct {
	Assets        []Asset `json:"assets"`
	TotalCount    int     `json:"total_count"`
	FilteredCount int     `json:"filtered_count"`
	Page          int     `json:"page"`
	PerPage       int     `json:"per_page"`
	TotalPages    int     `json:"total_pages"`
	HasPrev       bool    `json:"has_prev"`
	HasNext       bool    `json:"has_next"`
}

// NewAssetPage derives the paging envelope from the raw counts.
func NewAssetPage(assets []Asset, totalCount, filteredCount, page, perPage int) AssetPage {
	pages := 0
	if perPage > 0 {
		pages = (filteredCount + perPage - 1) / perPage
	}
	return AssetPage{
		Assets:        assets,
		TotalCount:    totalCount,
		FilteredCount: filteredCount,
		Page:          page,
		PerPage:       perPage,
		TotalPages:    pages,
		HasPrev:       page > 1,
		HasNext:       page < pages,
	}
}

// PrevPage and NextPage are the adjacent page numbers for navigation links.
func (p AssetPage) PrevPage() int { return p.Page - 1 }
func (p AssetPage) NextPage() int { return p.Page + 1 }

// PageNumbers lists the page links to render: the first and last page plus a
// window around the current one. A zero marks an elided gap.
func (p AssetPage) PageNumbers() []int {
	const edge, around = 1, 2

	if p.TotalPages <= 0 {
		return nil
	}

	var out []int
	inGap := false
	for n := 1; n <= p.TotalPages; n++ {
		show := n <= edge || n > p.TotalPages-edge ||
			(n >= p.Page-around && n <= p.Page+around)
		if show {
			out = append(out, n)
			inGap = false
			continue
		}
		if !inGap {
			out = append(out, 0)
			inGap = true
		}
	}
	return out
}

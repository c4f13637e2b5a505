package model

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name     string
		page     int64
		pageSize int64
		total    int64
		pages    int64
		hasNext  bool
		hasPrev  bool
	}{
		{"ExactFit", 1, 10, 20, 2, true, false},
		{"CeilPartialPage", 1, 10, 21, 3, true, false},
		{"LastPage", 3, 10, 21, 3, false, true},
		{"MiddlePage", 2, 10, 30, 3, true, true},
		{"Empty", 1, 10, 0, 0, false, false},
		{"SingleRow", 1, 20, 1, 1, false, false},
		{"PageBeyondEnd", 5, 10, 21, 3, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.pageSize, tc.total)
			if p.TotalPages != tc.pages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.pages)
			}
			if p.HasNextPage != tc.hasNext {
				t.Errorf("HasNextPage = %v, want %v", p.HasNextPage, tc.hasNext)
			}
			if p.HasPrevPage != tc.hasPrev {
				t.Errorf("HasPrevPage = %v, want %v", p.HasPrevPage, tc.hasPrev)
			}
			if p.CurrentPage != tc.page || p.TotalCount != tc.total {
				t.Errorf("envelope echoes page=%d total=%d, want %d/%d",
					p.CurrentPage, p.TotalCount, tc.page, tc.total)
			}
		})
	}
}

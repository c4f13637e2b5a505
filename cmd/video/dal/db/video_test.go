package db

import "testing"

// orderClause feeds a raw ORDER BY, so everything outside the whitelist
// must collapse to the defaults.
func TestOrderClause(t *testing.T) {
	cases := []struct {
		sortBy, order string
		want          string
	}{
		{"views", "asc", "views asc"},
		{"like_count", "desc", "like_count desc"},
		{"created_at", "", "created_at desc"},
		{"", "", "created_at desc"},
		{"title; DROP TABLE videos", "asc", "created_at asc"},
		{"views", "asc; --", "views desc"},
		{"nonsense", "nonsense", "created_at desc"},
	}
	for _, tc := range cases {
		if got := orderClause(tc.sortBy, tc.order); got != tc.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tc.sortBy, tc.order, got, tc.want)
		}
	}
}

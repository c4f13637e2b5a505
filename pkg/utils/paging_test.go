package utils

import (
	"testing"

	"github.com/vidloom/vidloom/pkg/constants"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name         string
		page, size   int64
		wantP, wantS int64
	}{
		{"Defaults", 0, 0, constants.DefaultPage, constants.DefaultLimit},
		{"NegativePage", -3, 10, constants.DefaultPage, 10},
		{"OverMax", 2, 1000, 2, constants.MaxLimit},
		{"InRange", 4, 50, 4, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, s := NormalizePage(tc.page, tc.size)
			if p != tc.wantP || s != tc.wantS {
				t.Errorf("got (%d,%d), want (%d,%d)", p, s, tc.wantP, tc.wantS)
			}
		})
	}
}

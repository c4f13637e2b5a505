package utils

import "github.com/vidloom/vidloom/pkg/constants"

// NormalizePage clamps listing parameters to the shared pagination
// contract: 1-based page, bounded page size.
func NormalizePage(page, pageSize int64) (int64, int64) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultLimit
	}
	if pageSize > constants.MaxLimit {
		pageSize = constants.MaxLimit
	}
	return page, pageSize
}

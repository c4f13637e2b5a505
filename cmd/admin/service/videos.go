package service

import (
	"context"

	"github.com/vidloom/vidloom/cmd/model"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/utils"
)

type AdminVideoService struct {
	ctx context.Context
}

func NewAdminVideoService(ctx context.Context) *AdminVideoService {
	return &AdminVideoService{ctx: ctx}
}

// List returns videos regardless of visibility or processing status,
// optionally filtered by title keyword and status.
func (s *AdminVideoService) List(ctx context.Context, keyword, status string, page, pageSize int64) ([]*model.Video, model.Pagination, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	videos, total, err := videodb.QueryVideosAdmin(ctx, keyword, status, page, pageSize)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return videos, model.NewPagination(page, pageSize, total), nil
}

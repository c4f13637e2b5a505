package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/cache"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

type VideoListService struct {
	ctx          context.Context
	cacheManager *cache.VideoCacheManager
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{
		ctx:          ctx,
		cacheManager: cache.NewVideoCacheManager(),
	}
}

type ListParams struct {
	Category string
	Keyword  string
	SortBy   string
	Order    string
	Page     int64
	PageSize int64
}

type VideoList struct {
	Videos     []*model.Video   `json:"videos"`
	Pagination model.Pagination `json:"pagination"`
}

// PublicList serves the public feed. Only completed, author-public videos
// ever appear here; a pending or failed video is invisible regardless of
// its is_public flag.
func (s *VideoListService) PublicList(ctx context.Context, params *ListParams) (*VideoList, error) {
	page, pageSize := utils.NormalizePage(params.Page, params.PageSize)
	videos, total, err := db.QueryPublicVideos(ctx, params.Category, params.Keyword,
		params.SortBy, params.Order, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &VideoList{
		Videos:     videos,
		Pagination: model.NewPagination(page, pageSize, total),
	}, nil
}

// MyVideos lists everything the caller uploaded, including private and
// still-processing entries.
func (s *VideoListService) MyVideos(ctx context.Context, userId int64, params *ListParams) (*VideoList, error) {
	page, pageSize := utils.NormalizePage(params.Page, params.PageSize)
	videos, total, err := db.QueryUserVideos(ctx, userId, params.SortBy, params.Order, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &VideoList{
		Videos:     videos,
		Pagination: model.NewPagination(page, pageSize, total),
	}, nil
}

// Get applies the visibility rules for a single video: unprocessed videos
// exist only for their owner, and a private completed video is Forbidden
// rather than hidden for everyone else.
func (s *VideoListService) Get(ctx context.Context, videoId, viewerId int64) (*model.Video, error) {
	video, err := db.GetVideo(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, err
	}
	if video.UserId == viewerId {
		s.overlayHotCounters(ctx, video)
		return video, nil
	}
	if video.ProcessingStatus != constants.ProcessingStatusCompleted {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	if !video.IsPublic {
		return nil, errno.ForbiddenErr.WithMessage("video is not public")
	}
	s.overlayHotCounters(ctx, video)
	return video, nil
}

// overlayHotCounters serves the detail page counters from the redis mirrors
// when present. The mirrors are rewritten from the authoritative value after
// every view and like, so they are at least as fresh as the row just read.
func (s *VideoListService) overlayHotCounters(ctx context.Context, video *model.Video) {
	if views, ok := s.cacheManager.GetViews(ctx, video.VideoId); ok {
		video.Views = views
	}
	if likeCount, ok := s.cacheManager.GetLikeCount(ctx, video.VideoId); ok {
		video.LikeCount = likeCount
	}
}

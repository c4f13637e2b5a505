package service

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/cache"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

type ViewService struct {
	ctx          context.Context
	cacheManager *cache.VideoCacheManager
}

func NewViewService(ctx context.Context) *ViewService {
	return &ViewService{
		ctx:          ctx,
		cacheManager: cache.NewVideoCacheManager(),
	}
}

// RecordView bumps the view counter unconditionally. There is no dedup
// window: repeat views by the same viewer each count, which is the accrual
// model this platform ships with. viewerId == 0 means anonymous; only
// signed-in viewers get a watch history entry.
func (s *ViewService) RecordView(ctx context.Context, videoId, viewerId int64) (int64, error) {
	views, err := videodb.IncrementViews(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errno.NotFoundErr.WithMessage("video not found")
		}
		return 0, err
	}

	if viewerId > 0 {
		entry := &model.WatchHistory{
			WatchHistoryId: utils.GenerateID(),
			UserId:         viewerId,
			VideoId:        videoId,
			WatchedAt:      time.Now(),
		}
		if err := videodb.InsertWatchHistory(ctx, entry); err != nil {
			// the view already counted; history append failure is logged,
			// not surfaced
			hlog.CtxWarnf(ctx, "failed to append watch history for user %d: %v", viewerId, err)
		}
	}

	if err := s.cacheManager.MirrorViews(ctx, videoId, views); err != nil {
		hlog.CtxWarnf(ctx, "failed to mirror view count for video %d: %v", videoId, err)
	}
	return views, nil
}

type WatchHistoryList struct {
	Entries    []*model.WatchHistory `json:"entries"`
	Videos     []*model.Video        `json:"videos"`
	Pagination model.Pagination      `json:"pagination"`
}

// WatchHistory pages a user's viewing record, most recent first.
func (s *ViewService) WatchHistory(ctx context.Context, userId, page, pageSize int64) (*WatchHistoryList, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	entries, total, err := videodb.QueryWatchHistory(ctx, userId, page, pageSize)
	if err != nil {
		return nil, err
	}

	videoIds := make([]int64, 0, len(entries))
	for _, e := range entries {
		videoIds = append(videoIds, e.VideoId)
	}
	videos, err := videodb.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, err
	}

	return &WatchHistoryList{
		Entries:    entries,
		Videos:     videos,
		Pagination: model.NewPagination(page, pageSize, total),
	}, nil
}

package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/interaction/dal/db"
	"github.com/vidloom/vidloom/cmd/model"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/cache"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

type LikeActionService struct {
	ctx          context.Context
	cacheManager *cache.VideoCacheManager
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{
		ctx:          ctx,
		cacheManager: cache.NewVideoCacheManager(),
	}
}

// LikeResult is the toggle outcome: membership after the flip and the
// recomputed set cardinality.
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// ToggleVideoLike flips the caller's like on a video. Present -> removed,
// absent -> added; calling twice restores the pre-toggle state exactly.
func (s *LikeActionService) ToggleVideoLike(ctx context.Context, videoId, userId int64) (*LikeResult, error) {
	mutex := cache.NewTargetMutex("video_like", videoId)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errno.RedisErr.WithMessage("could not acquire like lock")
	}
	defer mutex.UnlockContext(ctx)

	liked, likeCount, err := db.ToggleVideoLike(ctx, videoId, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, err
	}

	if err := s.cacheManager.MirrorLikeCount(ctx, videoId, likeCount); err != nil {
		hlog.CtxWarnf(ctx, "failed to mirror like count for video %d: %v", videoId, err)
	}
	return &LikeResult{Liked: liked, LikeCount: likeCount}, nil
}

// ToggleCommentLike flips the caller's like on a comment.
func (s *LikeActionService) ToggleCommentLike(ctx context.Context, commentId, userId int64) (*LikeResult, error) {
	mutex := cache.NewTargetMutex("comment_like", commentId)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errno.RedisErr.WithMessage("could not acquire like lock")
	}
	defer mutex.UnlockContext(ctx)

	liked, likeCount, err := db.ToggleCommentLike(ctx, commentId, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("comment not found")
		}
		return nil, err
	}
	return &LikeResult{Liked: liked, LikeCount: likeCount}, nil
}

// VideoLikeStatus reports whether the user currently likes the video,
// alongside the stored count, for rendering the like button state.
func (s *LikeActionService) VideoLikeStatus(ctx context.Context, videoId, userId int64) (*LikeResult, error) {
	liked, err := db.IsVideoLikedByUser(ctx, videoId, userId)
	if err != nil {
		return nil, err
	}
	likeCount, err := db.GetVideoLikeCount(ctx, videoId)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: liked, LikeCount: likeCount}, nil
}

type LikedVideoList struct {
	Videos     []*model.Video   `json:"videos"`
	Pagination model.Pagination `json:"pagination"`
}

// LikedVideos lists the videos the user currently likes, newest like first.
func (s *LikeActionService) LikedVideos(ctx context.Context, userId, page, pageSize int64) (*LikedVideoList, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	ids, total, err := db.GetLikedVideoIds(ctx, userId, page, pageSize)
	if err != nil {
		return nil, err
	}
	videos, err := videodb.GetVideosByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &LikedVideoList{
		Videos:     videos,
		Pagination: model.NewPagination(page, pageSize, total),
	}, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	interactiondb "github.com/vidloom/vidloom/cmd/interaction/dal/db"
	"github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/oss"
)

type VideoDeleteService struct {
	ctx context.Context
}

func NewVideoDeleteService(ctx context.Context) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx}
}

// Delete removes a video and its engagement rows. Permitted for the owner
// or an admin capability the request layer already resolved.
func (s *VideoDeleteService) Delete(ctx context.Context, videoId, actorId int64, isAdmin bool) error {
	video, err := db.GetVideo(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("video not found")
		}
		return err
	}
	if video.UserId != actorId && !isAdmin {
		return errno.ForbiddenErr.WithMessage("only the uploader or an admin can delete this video")
	}

	if err := db.DeleteVideo(ctx, videoId); err != nil {
		return err
	}
	if err := interactiondb.DeleteLikesByVideo(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "failed to delete likes for video %d: %v", videoId, err)
	}
	if err := interactiondb.DeleteCommentLikesByVideo(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "failed to delete comment likes for video %d: %v", videoId, err)
	}
	if err := interactiondb.DeleteCommentsByVideo(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "failed to delete comments for video %d: %v", videoId, err)
	}

	// stored media cleanup is best effort
	oss.RemoveVideo(ctx, fmt.Sprint(videoId))

	hlog.CtxInfof(ctx, "video %d deleted by user %d", videoId, actorId)
	return nil
}

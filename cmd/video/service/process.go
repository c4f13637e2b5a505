package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
)

type VideoProcessService struct {
	ctx context.Context
}

func NewVideoProcessService(ctx context.Context) *VideoProcessService {
	return &VideoProcessService{ctx: ctx}
}

// FinishProcessing records the pipeline outcome: processing -> completed
// (upload progress forced to 100) or processing -> failed. Both end states
// are terminal; a redelivered completion for an already-settled video is a
// no-op, not an error.
func (s *VideoProcessService) FinishProcessing(ctx context.Context, videoId int64, succeeded bool) error {
	err := db.FinishProcessing(ctx, videoId, succeeded)
	if err == nil {
		hlog.CtxInfof(ctx, "video %d processing finished, succeeded=%v", videoId, succeeded)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	video, getErr := db.GetVideo(ctx, videoId)
	if getErr != nil {
		if errors.Is(getErr, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("video not found")
		}
		return getErr
	}
	if video.ProcessingStatus == constants.ProcessingStatusCompleted ||
		video.ProcessingStatus == constants.ProcessingStatusFailed {
		return nil
	}
	return errno.InvalidOperationErr.WithMessage("video is not in processing state")
}

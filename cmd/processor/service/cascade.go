package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	interactiondb "github.com/vidloom/vidloom/cmd/interaction/dal/db"
	relationdb "github.com/vidloom/vidloom/cmd/relation/dal/db"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/mq"
	"github.com/vidloom/vidloom/pkg/oss"
)

type CascadeWorker struct{}

func NewCascadeWorker() *CascadeWorker {
	return &CascadeWorker{}
}

// HandleCascadeEvent removes everything a deleted account owned: uploads
// and their stored media, comments, likes, subscription edges on both
// sides, and watch history. Every step is a bulk delete keyed by the user
// id, so a redelivered event finds nothing left and succeeds again.
func (w *CascadeWorker) HandleCascadeEvent(ctx context.Context, event *mq.CascadeEvent) error {
	hlog.CtxInfof(ctx, "cascading deletion for user %d (requested by %d)",
		event.UserID, event.DeletedBy)

	videoIds, err := videodb.GetVideoIdsByUser(ctx, event.UserID)
	if err != nil {
		return err
	}
	for _, videoId := range videoIds {
		if err := interactiondb.DeleteLikesByVideo(ctx, videoId); err != nil {
			return err
		}
		if err := interactiondb.DeleteCommentLikesByVideo(ctx, videoId); err != nil {
			return err
		}
		if err := interactiondb.DeleteCommentsByVideo(ctx, videoId); err != nil {
			return err
		}
		oss.RemoveVideo(ctx, fmt.Sprint(videoId))
	}
	if err := videodb.DeleteVideosByUser(ctx, event.UserID); err != nil {
		return err
	}

	if err := interactiondb.DeleteCommentLikesByCommentAuthor(ctx, event.UserID); err != nil {
		return err
	}
	if err := interactiondb.DeleteCommentsByUser(ctx, event.UserID); err != nil {
		return err
	}
	if err := interactiondb.DeleteLikesByUser(ctx, event.UserID); err != nil {
		return err
	}
	if err := relationdb.DeleteEdgesForUser(ctx, event.UserID); err != nil {
		return err
	}
	if err := videodb.DeleteWatchHistoryByUser(ctx, event.UserID); err != nil {
		return err
	}

	hlog.CtxInfof(ctx, "cascade for user %d done, %d videos removed", event.UserID, len(videoIds))
	return nil
}

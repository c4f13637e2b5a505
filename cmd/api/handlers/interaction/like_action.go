package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidloom/vidloom/cmd/interaction/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/utils"
)

// LikeVideo toggles the caller's like on a video. Sending it twice
// returns the video to its previous state.
func LikeVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).ToggleVideoLike(ctx, videoId, jwt.GetUserId(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

// LikeComment toggles the caller's like on a comment.
func LikeComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).ToggleCommentLike(ctx, commentId, jwt.GetUserId(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

// VideoLikeStatus reports whether the caller likes the video.
func VideoLikeStatus(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).VideoLikeStatus(ctx, videoId, jwt.GetUserId(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

// LikedVideos lists the videos the caller currently likes.
func LikedVideos(ctx context.Context, c *app.RequestContext) {
	var param PageParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewLikeActionService(ctx).LikedVideos(ctx, jwt.GetUserId(c), param.Page, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidloom/vidloom/cmd/interaction/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/utils"
)

// CreateComment posts a top level comment or a reply on a video.
func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	var param CreateCommentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).Create(ctx, videoId, jwt.GetUserId(c), param.ParentId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// EditComment rewrites the comment text, author only.
func EditComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	var param EditCommentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).Edit(ctx, commentId, jwt.GetUserId(c), param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// DeleteComment soft deletes a comment for its author or an admin.
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewCommentService(ctx).SoftDelete(ctx, commentId, jwt.GetUserId(c), jwt.IsAdmin(c)); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// ListComments returns a page of top level comments, each carrying its
// full reply thread.
func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	var param ListCommentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewCommentService(ctx).List(ctx, videoId, param.SortBy, param.Order, param.Page, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidloom/vidloom/cmd/video/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
)

// Feed lists public completed videos with category and keyword filters.
func Feed(ctx context.Context, c *app.RequestContext) {
	var param FeedParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewVideoListService(ctx).PublicList(ctx, &service.ListParams{
		Category: param.Category,
		Keyword:  param.Keyword,
		SortBy:   param.SortBy,
		Order:    param.Order,
		Page:     param.Page,
		PageSize: param.PageSize,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

// MyVideos lists the caller's own uploads in every state.
func MyVideos(ctx context.Context, c *app.RequestContext) {
	var param FeedParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(c)
	list, err := service.NewVideoListService(ctx).MyVideos(ctx, userId, &service.ListParams{
		SortBy:   param.SortBy,
		Order:    param.Order,
		Page:     param.Page,
		PageSize: param.PageSize,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/vidloom/vidloom/cmd/channel/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/utils"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type PageParam struct {
	Page     int64 `query:"page"`
	PageSize int64 `query:"page_size"`
}

// Summary returns the public channel page: profile, videos, aggregate
// view count and subscriber count.
func Summary(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	summary, err := service.NewChannelService(ctx).Summary(ctx, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, summary)
}

// WatchHistory lists the caller's viewing history, newest first.
func WatchHistory(ctx context.Context, c *app.RequestContext) {
	var param PageParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewViewService(ctx).WatchHistory(ctx, jwt.GetUserId(c), param.Page, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

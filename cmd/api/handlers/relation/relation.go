package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/vidloom/vidloom/cmd/relation/service"
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

// Subscribe toggles the caller's subscription to a channel.
func Subscribe(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	result, err := service.NewSubscriptionService(ctx).Subscribe(ctx, jwt.GetUserId(c), channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

// IsSubscribed reports whether the caller currently follows the channel.
func IsSubscribed(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	subscribed, err := service.NewSubscriptionService(ctx).IsSubscribed(ctx, jwt.GetUserId(c), channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"subscribed": subscribed})
}

// Subscribers pages through the accounts following a channel.
func Subscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	var param PageParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewSubscriptionService(ctx).Subscribers(ctx, channelId, param.Page, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

// Subscriptions lists the channels the caller follows.
func Subscriptions(ctx context.Context, c *app.RequestContext) {
	var param PageParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewSubscriptionService(ctx).Subscriptions(ctx, jwt.GetUserId(c), param.Page, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

// Reconcile repairs half-written subscription edges for one channel.
// Admin only; normal reads self-heal lazily.
func Reconcile(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	repaired, err := service.NewSubscriptionService(ctx).Reconcile(ctx, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"repaired": repaired})
}

package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidloom/vidloom/cmd/user/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
)

func UpdateChannel(ctx context.Context, c *app.RequestContext) {
	var param UpdateChannelParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(c)
	user, err := service.NewProfileService(ctx).UpdateChannelProfile(ctx, userId, &service.ChannelProfileParams{
		ChannelName:        param.ChannelName,
		ChannelDescription: param.ChannelDescription,
		ChannelBanner:      param.ChannelBanner,
		AvatarUrl:          param.AvatarUrl,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidloom/vidloom/cmd/user/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/utils"
)

// GetUserInfo returns the authenticated user's own profile.
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserId(c)
	user, err := service.NewProfileService(ctx).GetUserInfo(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

// GetUserById returns another user's public profile.
func GetUserById(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	user, err := service.NewProfileService(ctx).GetUserInfo(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

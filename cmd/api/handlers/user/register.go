package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidloom/vidloom/cmd/user/service"
	"github.com/vidloom/vidloom/pkg/errno"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewCreateUserService(ctx).CreateUser(ctx, &service.RegisterParams{
		UserName: param.UserName,
		Email:    param.Email,
		Password: param.Password,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/vidloom/vidloom/pkg/errno"
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

type RegisterParam struct {
	UserName string `json:"user_name" form:"user_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UpdateChannelParam struct {
	ChannelName        *string `json:"channel_name" form:"channel_name"`
	ChannelDescription *string `json:"channel_description" form:"channel_description"`
	ChannelBanner      *string `json:"channel_banner" form:"channel_banner"`
	AvatarUrl          *string `json:"avatar_url" form:"avatar_url"`
}

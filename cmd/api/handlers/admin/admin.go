package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/vidloom/vidloom/cmd/admin/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/mq"
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

type ListUsersParam struct {
	Keyword  string `query:"keyword"`
	Role     string `query:"role"`
	Page     int64  `query:"page"`
	PageSize int64  `query:"page_size"`
}

type UpdateRoleParam struct {
	Role string `json:"role" form:"role"`
}

type ListVideosParam struct {
	Keyword  string `query:"keyword"`
	Status   string `query:"status"`
	Page     int64  `query:"page"`
	PageSize int64  `query:"page_size"`
}

// Stats serves the dashboard summary.
func Stats(ctx context.Context, c *app.RequestContext) {
	stats, err := service.NewAdminStatsService(ctx).Stats(ctx)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

// ListUsers pages through accounts with optional keyword and role filters.
func ListUsers(producer *mq.Producer) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		var param ListUsersParam
		if err := c.Bind(&param); err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		users, pagination, err := service.NewAdminUserService(ctx, producer).List(ctx, param.Keyword, param.Role, param.Page, param.PageSize)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, map[string]interface{}{
			"users":      users,
			"pagination": pagination,
		})
	}
}

// UpdateUserRole promotes or demotes an account.
func UpdateUserRole(producer *mq.Producer) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
		if err != nil {
			SendResponse(c, errno.ParamErr, nil)
			return
		}
		var param UpdateRoleParam
		if err := c.Bind(&param); err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		user, err := service.NewAdminUserService(ctx, producer).UpdateRole(ctx, jwt.GetUserId(c), userId, param.Role)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, user)
	}
}

// DeleteUser removes an account and schedules the content cascade.
func DeleteUser(producer *mq.Producer) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
		if err != nil {
			SendResponse(c, errno.ParamErr, nil)
			return
		}
		if err := service.NewAdminUserService(ctx, producer).Delete(ctx, jwt.GetUserId(c), userId); err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, nil)
	}
}

// ListVideos pages through every video regardless of visibility.
func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, pagination, err := service.NewAdminVideoService(ctx).List(ctx, param.Keyword, param.Status, param.Page, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"videos":     videos,
		"pagination": pagination,
	})
}

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

type CreateCommentParam struct {
	ParentId int64  `json:"parent_id" form:"parent_id"`
	Content  string `json:"content" form:"content"`
}

type EditCommentParam struct {
	Content string `json:"content" form:"content"`
}

type ListCommentParam struct {
	SortBy   string `query:"sort_by"`
	Order    string `query:"order"`
	Page     int64  `query:"page"`
	PageSize int64  `query:"page_size"`
}

type PageParam struct {
	Page     int64 `query:"page"`
	PageSize int64 `query:"page_size"`
}

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

type UploadVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
	IsPublic    bool   `form:"is_public"`
	Duration    int64  `form:"duration"`
}

type FeedParam struct {
	Category string `query:"category"`
	Keyword  string `query:"keyword"`
	SortBy   string `query:"sort_by"`
	Order    string `query:"order"`
	Page     int64  `query:"page"`
	PageSize int64  `query:"page_size"`
}

type UpdateVideoParam struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Tags        *string `json:"tags"`
	IsPublic    *bool   `json:"is_public"`
}

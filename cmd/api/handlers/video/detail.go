package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	channelservice "github.com/vidloom/vidloom/cmd/channel/service"
	"github.com/vidloom/vidloom/cmd/video/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/utils"
)

// GetVideo returns a single video under the visibility rules. The viewer
// id is zero for anonymous requests.
func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	video, err := service.NewVideoListService(ctx).Get(ctx, videoId, jwt.GetUserId(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// RecordView bumps the view counter and appends to the viewer's watch
// history when they are signed in.
func RecordView(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	views, err := channelservice.NewViewService(ctx).RecordView(ctx, videoId, jwt.GetUserId(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"views": views})
}

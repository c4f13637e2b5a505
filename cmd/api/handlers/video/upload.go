package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidloom/vidloom/cmd/video/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/mq"
)

// UploadVideo receives the media file and metadata in one multipart
// request. The response returns the record while it is still processing.
func UploadVideo(producer *mq.Producer) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		var param UploadVideoParam
		if err := c.Bind(&param); err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		fileHeader, err := c.FormFile("video")
		if err != nil {
			SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		defer file.Close()

		userId := jwt.GetUserId(c)
		video, err := service.NewVideoIngestService(ctx, producer).Ingest(ctx, userId, &service.IngestParams{
			Title:       param.Title,
			Description: param.Description,
			Category:    param.Category,
			Tags:        param.Tags,
			IsPublic:    param.IsPublic,
			Duration:    param.Duration,
			File:        file,
			FileSize:    fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
		})
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, video)
	}
}

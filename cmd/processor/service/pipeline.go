package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	videoservice "github.com/vidloom/vidloom/cmd/video/service"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/mq"
	"github.com/vidloom/vidloom/pkg/oss"
)

// processingDelay stands in for the real transcode step. The pipeline is
// a stub: the media bytes are already in object storage, so "processing"
// is just the state transition after a fixed wait.
const processingDelay = 3 * time.Second

type PipelineWorker struct{}

func NewPipelineWorker() *PipelineWorker {
	return &PipelineWorker{}
}

// HandleUploadEvent drives a video from processing to completed. A video
// that was deleted mid-flight is acked and forgotten; a video already in
// a terminal state is a redelivery and also acked.
func (w *PipelineWorker) HandleUploadEvent(ctx context.Context, event *mq.UploadEvent) error {
	hlog.CtxInfof(ctx, "processing video %d (object %s, %d bytes)",
		event.VideoID, event.ObjectKey, event.FileSize)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(processingDelay):
	}

	// A real transcoder would grab a frame here. The stub uploads a flat
	// cover so the video page has something to render.
	if url, err := w.uploadPlaceholderCover(ctx, event.VideoID); err != nil {
		hlog.CtxWarnf(ctx, "cover upload for video %d failed: %v", event.VideoID, err)
	} else if err := videodb.UpdateVideoInfo(ctx, event.VideoID, map[string]interface{}{
		"thumbnail_url": url,
	}); err != nil {
		hlog.CtxWarnf(ctx, "saving cover url for video %d failed: %v", event.VideoID, err)
	}

	err := videoservice.NewVideoProcessService(ctx).FinishProcessing(ctx, event.VideoID, true)
	if err != nil {
		if errno.IsNotFound(err) {
			hlog.CtxWarnf(ctx, "video %d vanished before processing finished", event.VideoID)
			return nil
		}
		return err
	}
	return nil
}

func (w *PipelineWorker) uploadPlaceholderCover(ctx context.Context, videoId int64) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 180))
	fill := color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	for y := 0; y < 180; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return "", err
	}
	return oss.UploadThumbnail(ctx, fmt.Sprint(videoId), &buf, int64(buf.Len()))
}

package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/mq"
	"github.com/vidloom/vidloom/pkg/oss"
	"github.com/vidloom/vidloom/pkg/utils"
)

type VideoIngestService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewVideoIngestService(ctx context.Context, producer *mq.Producer) *VideoIngestService {
	return &VideoIngestService{ctx: ctx, producer: producer}
}

type IngestParams struct {
	Title       string
	Description string
	Category    string
	Tags        string
	IsPublic    bool
	Duration    int64
	File        io.Reader
	FileSize    int64
	ContentType string
}

// Ingest validates the metadata, stores the media bytes, and creates the
// record in the processing state. The pipeline worker owns the transition
// out of processing; until then the video is invisible to public listings.
func (s *VideoIngestService) Ingest(ctx context.Context, userId int64, params *IngestParams) (*model.Video, error) {
	if err := validateTitle(params.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(params.Description); err != nil {
		return nil, err
	}
	category, err := validateCategory(params.Category)
	if err != nil {
		return nil, err
	}
	tags, err := NormalizeTags(params.Tags)
	if err != nil {
		return nil, err
	}

	videoId := utils.GenerateID()
	objectKey, videoUrl, err := oss.UploadVideo(ctx, fmt.Sprint(videoId), params.File, params.FileSize, params.ContentType)
	if err != nil {
		return nil, err
	}

	video := &model.Video{
		VideoId:          videoId,
		UserId:           userId,
		Title:            strings.TrimSpace(params.Title),
		Description:      strings.TrimSpace(params.Description),
		VideoUrl:         videoUrl,
		ThumbnailUrl:     constants.DefaultThumbnail,
		Duration:         params.Duration,
		Tags:             strings.Join(tags, ","),
		Category:         category,
		IsPublic:         params.IsPublic,
		ProcessingStatus: constants.ProcessingStatusRunning,
		FileSize:         params.FileSize,
		UploadProgress:   0,
	}
	if err := db.InsertVideo(ctx, video); err != nil {
		return nil, err
	}

	s.producer.PublishUploadEvent(ctx, &mq.UploadEvent{
		VideoID:   videoId,
		UserID:    userId,
		ObjectKey: objectKey,
		FileSize:  params.FileSize,
		Timestamp: time.Now().Unix(),
		EventID:   uuid.New().String(),
	})

	hlog.CtxInfof(ctx, "video %d ingested for user %d, processing started", videoId, userId)
	return video, nil
}

package db

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/utils"
)

func setupProcessingTest(t *testing.T) (context.Context, *model.Video) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	Init()

	ctx := context.Background()
	video := &model.Video{
		VideoId:          utils.GenerateID(),
		UserId:           utils.GenerateID(),
		Title:            "in flight",
		Category:         constants.DefaultCategory,
		ProcessingStatus: constants.ProcessingStatusRunning,
	}
	if err := DB.Create(video).Error; err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})
	})
	return ctx, video
}

func TestFinishProcessingCompletes(t *testing.T) {
	ctx, video := setupProcessingTest(t)

	if err := FinishProcessing(ctx, video.VideoId, true); err != nil {
		t.Fatal(err)
	}

	var stored model.Video
	if err := DB.Where("video_id = ?", video.VideoId).First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.ProcessingStatus != constants.ProcessingStatusCompleted {
		t.Errorf("status = %q, want completed", stored.ProcessingStatus)
	}
	if stored.UploadProgress != 100 {
		t.Errorf("upload_progress = %d, want 100", stored.UploadProgress)
	}
}

func TestFinishProcessingIsTerminal(t *testing.T) {
	ctx, video := setupProcessingTest(t)

	if err := FinishProcessing(ctx, video.VideoId, true); err != nil {
		t.Fatal(err)
	}

	// a redelivered failure event must not flip a completed video
	err := FinishProcessing(ctx, video.VideoId, false)
	if err != gorm.ErrRecordNotFound {
		t.Errorf("second transition returned %v, want ErrRecordNotFound", err)
	}

	var stored model.Video
	if err := DB.Where("video_id = ?", video.VideoId).First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.ProcessingStatus != constants.ProcessingStatusCompleted {
		t.Errorf("terminal state changed to %q", stored.ProcessingStatus)
	}
}

func TestFinishProcessingFails(t *testing.T) {
	ctx, video := setupProcessingTest(t)

	if err := FinishProcessing(ctx, video.VideoId, false); err != nil {
		t.Fatal(err)
	}

	var stored model.Video
	if err := DB.Where("video_id = ?", video.VideoId).First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.ProcessingStatus != constants.ProcessingStatusFailed {
		t.Errorf("status = %q, want failed", stored.ProcessingStatus)
	}
}

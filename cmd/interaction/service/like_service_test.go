package service

import (
	"context"
	"testing"

	"github.com/vidloom/vidloom/cmd/interaction/dal/db"
	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/utils"
)

func TestVideoLikeStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	db.Init()
	if err := db.DB.AutoMigrate(&model.Video{}); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	videoId := seedGuardVideo(t, "status target")
	likerId := utils.GenerateID()
	t.Cleanup(func() {
		db.DB.Where("video_id = ?", videoId).Delete(&model.VideoLike{})
	})

	if _, _, err := db.ToggleVideoLike(ctx, videoId, likerId); err != nil {
		t.Fatal(err)
	}

	svc := NewLikeActionService(ctx)
	status, err := svc.VideoLikeStatus(ctx, videoId, likerId)
	if err != nil {
		t.Fatal(err)
	}
	if !status.Liked || status.LikeCount != 1 {
		t.Errorf("liker sees liked=%v count=%d, want true/1", status.Liked, status.LikeCount)
	}

	other, err := svc.VideoLikeStatus(ctx, videoId, utils.GenerateID())
	if err != nil {
		t.Fatal(err)
	}
	if other.Liked || other.LikeCount != 1 {
		t.Errorf("bystander sees liked=%v count=%d, want false/1", other.Liked, other.LikeCount)
	}
}

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/vidloom/vidloom/cmd/model"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/utils"
)

func setupChannelTest(t *testing.T) (context.Context, *model.User, *model.Video) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	userdb.Init()
	videodb.Init()

	ctx := context.Background()
	ownerId := utils.GenerateID()
	owner := &model.User{
		UserId:      ownerId,
		UserName:    fmt.Sprintf("chan-%d", ownerId),
		Email:       fmt.Sprintf("chan-%d@test.local", ownerId),
		ChannelName: "summary channel",
	}
	if err := userdb.DB.Create(owner).Error; err != nil {
		t.Fatal(err)
	}
	video := &model.Video{
		VideoId:          utils.GenerateID(),
		UserId:           ownerId,
		Title:            "counted",
		Category:         constants.DefaultCategory,
		IsPublic:         true,
		ProcessingStatus: constants.ProcessingStatusCompleted,
	}
	if err := videodb.DB.Create(video).Error; err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		videodb.DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})
		userdb.DB.Where("user_id = ?", owner.UserId).Delete(&model.User{})
	})
	return ctx, owner, video
}

func TestSummaryReflectsLiveViewCounts(t *testing.T) {
	ctx, owner, video := setupChannelTest(t)
	svc := NewChannelService(ctx)

	before, err := svc.Summary(ctx, owner.UserId)
	if err != nil {
		t.Fatal(err)
	}
	if before.TotalViews != 0 {
		t.Fatalf("fresh channel has TotalViews = %d, want 0", before.TotalViews)
	}
	if before.TotalVideos != 1 {
		t.Fatalf("TotalVideos = %d, want 1", before.TotalVideos)
	}

	if _, err := videodb.IncrementViews(ctx, video.VideoId); err != nil {
		t.Fatal(err)
	}

	// no staleness window: the very next read sees the new count
	after, err := svc.Summary(ctx, owner.UserId)
	if err != nil {
		t.Fatal(err)
	}
	if after.TotalViews != before.TotalViews+1 {
		t.Errorf("TotalViews = %d after a view, want %d", after.TotalViews, before.TotalViews+1)
	}
}

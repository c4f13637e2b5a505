package db

import (
	"context"
	"sync"
	"testing"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/utils"
)

func setupLikeTest(t *testing.T) (context.Context, *model.Video) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	Init()
	if err := DB.AutoMigrate(&model.Video{}); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	video := &model.Video{
		VideoId:          utils.GenerateID(),
		UserId:           utils.GenerateID(),
		Title:            "toggle target",
		Category:         constants.DefaultCategory,
		IsPublic:         true,
		ProcessingStatus: constants.ProcessingStatusCompleted,
	}
	if err := DB.Create(video).Error; err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		DB.Where("video_id = ?", video.VideoId).Delete(&model.VideoLike{})
		DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})
	})
	return ctx, video
}

func TestToggleVideoLikeRoundTrip(t *testing.T) {
	ctx, video := setupLikeTest(t)
	userId := utils.GenerateID()

	liked, count, err := ToggleVideoLike(ctx, video.VideoId, userId)
	if err != nil {
		t.Fatal(err)
	}
	if !liked || count != 1 {
		t.Errorf("first toggle: liked=%v count=%d, want true/1", liked, count)
	}

	liked, count, err = ToggleVideoLike(ctx, video.VideoId, userId)
	if err != nil {
		t.Fatal(err)
	}
	if liked || count != 0 {
		t.Errorf("second toggle: liked=%v count=%d, want false/0", liked, count)
	}

	// stored counter matches the edge set after the round trip
	stored, err := GetVideoLikeCount(ctx, video.VideoId)
	if err != nil {
		t.Fatal(err)
	}
	if stored != 0 {
		t.Errorf("stored like_count = %d, want 0", stored)
	}
}

func TestDeleteCommentLikesByVideoLeavesNoOrphans(t *testing.T) {
	ctx, video := setupLikeTest(t)

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   video.VideoId,
		UserId:    utils.GenerateID(),
		Content:   "about to vanish",
	}
	if err := CreateComment(ctx, comment); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		DB.Where("comment_id = ?", comment.CommentId).Delete(&model.CommentLike{})
		DB.Where("comment_id = ?", comment.CommentId).Delete(&model.Comment{})
	})

	if _, _, err := ToggleCommentLike(ctx, comment.CommentId, utils.GenerateID()); err != nil {
		t.Fatal(err)
	}

	if err := DeleteCommentLikesByVideo(ctx, video.VideoId); err != nil {
		t.Fatal(err)
	}
	if err := DeleteCommentsByVideo(ctx, video.VideoId); err != nil {
		t.Fatal(err)
	}

	var orphans int64
	if err := DB.Model(&model.CommentLike{}).
		Where("comment_id = ?", comment.CommentId).Count(&orphans).Error; err != nil {
		t.Fatal(err)
	}
	if orphans != 0 {
		t.Errorf("%d comment_like rows survive their comment", orphans)
	}
}

func TestConcurrentLikesKeepCountConsistent(t *testing.T) {
	ctx, video := setupLikeTest(t)

	const users = 10
	var wg sync.WaitGroup
	errs := make(chan error, users)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := ToggleVideoLike(ctx, video.VideoId, utils.GenerateID()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}

	count, err := GetVideoLikeCount(ctx, video.VideoId)
	if err != nil {
		t.Fatal(err)
	}
	if count != users {
		t.Errorf("like_count = %d after %d distinct likers, want %d", count, users, users)
	}

	var stored model.Video
	if err := DB.Where("video_id = ?", video.VideoId).First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.LikeCount != users {
		t.Errorf("denormalized like_count = %d, want %d", stored.LikeCount, users)
	}
}

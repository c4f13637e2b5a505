package service

import (
	"context"
	"testing"

	"github.com/vidloom/vidloom/cmd/interaction/dal/db"
	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

func setupGuardTest(t *testing.T) (context.Context, *CommentService, int64) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	db.Init()
	if err := db.DB.AutoMigrate(&model.Video{}); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	videoId := seedGuardVideo(t, "thread guards")
	t.Cleanup(func() {
		db.DB.Where("video_id = ?", videoId).Delete(&model.Comment{})
	})
	return ctx, NewCommentService(ctx), videoId
}

func seedGuardVideo(t *testing.T, title string) int64 {
	t.Helper()
	videoId := utils.GenerateID()
	video := &model.Video{
		VideoId:          videoId,
		UserId:           utils.GenerateID(),
		Title:            title,
		ProcessingStatus: constants.ProcessingStatusCompleted,
	}
	if err := db.DB.Create(video).Error; err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db.DB.Where("video_id = ?", videoId).Delete(&model.Video{})
	})
	return videoId
}

func TestCreateRejectsReplyToReply(t *testing.T) {
	ctx, svc, videoId := setupGuardTest(t)
	authorId := utils.GenerateID()

	top, err := svc.Create(ctx, videoId, authorId, 0, "top level")
	if err != nil {
		t.Fatal(err)
	}
	reply, err := svc.Create(ctx, videoId, authorId, top.CommentId, "first reply")
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Create(ctx, videoId, authorId, reply.CommentId, "too deep")
	if err == nil {
		t.Fatal("replying to a reply should fail")
	}
	if e := errno.ConvertErr(err); e.ErrCode != errno.InvalidOperationCode {
		t.Errorf("got code %d, want %d", e.ErrCode, errno.InvalidOperationCode)
	}
}

func TestCreateRejectsCrossVideoParent(t *testing.T) {
	ctx, svc, videoId := setupGuardTest(t)
	otherVideoId := seedGuardVideo(t, "other video")
	authorId := utils.GenerateID()

	top, err := svc.Create(ctx, videoId, authorId, 0, "anchored here")
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Create(ctx, otherVideoId, authorId, top.CommentId, "wrong video")
	if err == nil {
		t.Fatal("parent from another video should be rejected")
	}
	if e := errno.ConvertErr(err); e.ErrCode != errno.InvalidOperationCode {
		t.Errorf("got code %d, want %d", e.ErrCode, errno.InvalidOperationCode)
	}
}

func TestCreateAllowsReplyUnderDeletedParent(t *testing.T) {
	ctx, svc, videoId := setupGuardTest(t)
	authorId := utils.GenerateID()

	top, err := svc.Create(ctx, videoId, authorId, 0, "soon gone")
	if err != nil {
		t.Fatal(err)
	}
	if err := db.SoftDeleteComment(ctx, top.CommentId); err != nil {
		t.Fatal(err)
	}

	reply, err := svc.Create(ctx, videoId, authorId, top.CommentId, "still lands")
	if err != nil {
		t.Fatalf("reply under a soft-deleted parent should succeed: %v", err)
	}
	if reply.ParentId != top.CommentId {
		t.Errorf("reply parent = %d, want %d", reply.ParentId, top.CommentId)
	}
}

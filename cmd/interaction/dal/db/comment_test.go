package db

import (
	"context"
	"testing"
	"time"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/utils"
)

func setupCommentTest(t *testing.T) (context.Context, int64) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	Init()

	videoId := utils.GenerateID()
	t.Cleanup(func() {
		DB.Where("video_id = ?", videoId).Delete(&model.Comment{})
	})
	return context.Background(), videoId
}

func postComment(t *testing.T, ctx context.Context, videoId, parentId int64, content string) *model.Comment {
	t.Helper()
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    utils.GenerateID(),
		ParentId:  parentId,
		Content:   content,
	}
	if err := CreateComment(ctx, comment); err != nil {
		t.Fatal(err)
	}
	return comment
}

func TestSoftDeleteRedactsAndHides(t *testing.T) {
	ctx, videoId := setupCommentTest(t)

	top := postComment(t, ctx, videoId, 0, "first!")
	if err := SoftDeleteComment(ctx, top.CommentId); err != nil {
		t.Fatal(err)
	}

	stored, err := GetCommentInfo(ctx, top.CommentId)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.IsDeleted {
		t.Error("comment not flagged deleted")
	}
	if stored.Content != constants.DeletedCommentText {
		t.Errorf("content = %q, want the redaction placeholder", stored.Content)
	}

	comments, total, err := GetTopLevelComments(ctx, videoId, "", "", 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 || len(comments) != 0 {
		t.Errorf("deleted comment still listed: total=%d", total)
	}
}

func TestRepliesKeepCreationOrder(t *testing.T) {
	ctx, videoId := setupCommentTest(t)

	top := postComment(t, ctx, videoId, 0, "thread root")
	first := postComment(t, ctx, videoId, top.CommentId, "reply one")
	time.Sleep(10 * time.Millisecond) // created_at has millisecond precision
	second := postComment(t, ctx, videoId, top.CommentId, "reply two")

	replies, err := GetReplies(ctx, []int64{top.CommentId})
	if err != nil {
		t.Fatal(err)
	}
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want 2", len(replies))
	}
	if replies[0].CommentId != first.CommentId || replies[1].CommentId != second.CommentId {
		t.Error("replies out of creation order")
	}

	// deleting a reply removes it from the thread without touching siblings
	if err := SoftDeleteComment(ctx, first.CommentId); err != nil {
		t.Fatal(err)
	}
	replies, err = GetReplies(ctx, []int64{top.CommentId})
	if err != nil {
		t.Fatal(err)
	}
	if len(replies) != 1 || replies[0].CommentId != second.CommentId {
		t.Errorf("surviving reply set wrong: %d entries", len(replies))
	}
}

func TestEditMarksComment(t *testing.T) {
	ctx, videoId := setupCommentTest(t)

	c := postComment(t, ctx, videoId, 0, "typo here")
	if err := UpdateCommentText(ctx, c.CommentId, "typo fixed"); err != nil {
		t.Fatal(err)
	}

	stored, err := GetCommentInfo(ctx, c.CommentId)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Content != "typo fixed" {
		t.Errorf("content = %q", stored.Content)
	}
	if !stored.IsEdited || stored.EditedAt == nil {
		t.Error("edit not recorded")
	}
}

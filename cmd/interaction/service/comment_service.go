package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/interaction/dal/db"
	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func validateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errno.ValidationErr.WithMessage("comment text is required")
	}
	if utf8.RuneCountInString(text) > constants.MaxCommentLen {
		return errno.ValidationErr.WithMessage("comment must be at most 1000 characters")
	}
	return nil
}

// Create posts a top-level comment (parentId == 0) or a reply. Replies may
// only target a top-level comment on the same video, never another reply.
// A soft-deleted parent still accepts replies since the row keeps anchoring
// its thread.
func (s *CommentService) Create(ctx context.Context, videoId, authorId, parentId int64, text string) (*model.Comment, error) {
	if err := validateCommentText(text); err != nil {
		return nil, err
	}

	if _, err := db.GetVideoForComment(ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, err
	}

	if parentId != 0 {
		parent, err := db.GetCommentInfo(ctx, parentId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundErr.WithMessage("parent comment not found")
			}
			return nil, err
		}
		if parent.VideoId != videoId {
			return nil, errno.InvalidOperationErr.WithMessage("parent comment belongs to another video")
		}
		if !parent.IsTopLevel() {
			return nil, errno.InvalidOperationErr.WithMessage("cannot reply to a reply")
		}
	}

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    authorId,
		ParentId:  parentId,
		Content:   strings.TrimSpace(text),
		CreatedAt: time.Now(),
	}
	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Edit rewrites the text. Author-only; even admins don't edit other
// people's words.
func (s *CommentService) Edit(ctx context.Context, commentId, actorId int64, text string) (*model.Comment, error) {
	if err := validateCommentText(text); err != nil {
		return nil, err
	}

	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("comment not found")
		}
		return nil, err
	}
	if comment.UserId != actorId {
		return nil, errno.ForbiddenErr.WithMessage("only the author can edit this comment")
	}
	if comment.IsDeleted {
		return nil, errno.InvalidOperationErr.WithMessage("cannot edit a deleted comment")
	}

	if err := db.UpdateCommentText(ctx, commentId, strings.TrimSpace(text)); err != nil {
		return nil, err
	}
	return db.GetCommentInfo(ctx, commentId)
}

// SoftDelete redacts a comment, keeping the row so existing reply threads
// stay anchored. isAdmin is a capability the request layer resolved; it is
// not re-derived here. Replies of the deleted comment are not cascaded.
func (s *CommentService) SoftDelete(ctx context.Context, commentId, actorId int64, isAdmin bool) error {
	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("comment not found")
		}
		return err
	}
	if comment.UserId != actorId && !isAdmin {
		return errno.ForbiddenErr.WithMessage("only the author or an admin can delete this comment")
	}

	if err := db.SoftDeleteComment(ctx, commentId); err != nil {
		return err
	}
	hlog.CtxInfof(ctx, "comment %d soft-deleted by user %d", commentId, actorId)
	return nil
}

type CommentList struct {
	Comments   []*model.CommentWithReplies `json:"comments"`
	Pagination model.Pagination            `json:"pagination"`
}

// List pages top-level non-deleted comments and inlines each one's
// non-deleted replies in creation order.
func (s *CommentService) List(ctx context.Context, videoId int64, sortBy, order string, page, pageSize int64) (*CommentList, error) {
	if _, err := db.GetVideoForComment(ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, err
	}

	page, pageSize = utils.NormalizePage(page, pageSize)
	comments, total, err := db.GetTopLevelComments(ctx, videoId, sortBy, order, page, pageSize)
	if err != nil {
		return nil, err
	}

	parentIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		parentIds = append(parentIds, c.CommentId)
	}
	replies, err := db.GetReplies(ctx, parentIds)
	if err != nil {
		return nil, err
	}

	repliesByParent := make(map[int64][]*model.Comment, len(comments))
	for _, r := range replies {
		repliesByParent[r.ParentId] = append(repliesByParent[r.ParentId], r)
	}

	items := make([]*model.CommentWithReplies, 0, len(comments))
	for _, c := range comments {
		withReplies := &model.CommentWithReplies{Comment: *c}
		withReplies.Replies = repliesByParent[c.CommentId]
		if withReplies.Replies == nil {
			withReplies.Replies = make([]*model.Comment, 0)
		}
		items = append(items, withReplies)
	}

	return &CommentList{
		Comments:   items,
		Pagination: model.NewPagination(page, pageSize, total),
	}, nil
}

package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/pkg/constants"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed for video %d", comment.VideoId)
	}
	return nil
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func UpdateCommentText(ctx context.Context, commentId int64, content string) error {
	now := time.Now()
	return DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
			"edited_at": &now,
		}).Error
}

// SoftDeleteComment redacts the text and flags the row deleted. The row and
// its position under any parent survive so reply threads keep their shape.
func SoftDeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"content":    constants.DeletedCommentText,
		}).Error
}

var commentSortColumns = map[string]string{
	"created_at": "created_at",
	"like_count": "like_count",
}

func commentOrderClause(sortBy, order string) string {
	column, ok := commentSortColumns[sortBy]
	if !ok {
		column = constants.DefaultSortBy
	}
	if order != constants.OrderAsc {
		order = constants.OrderDesc
	}
	return column + " " + order
}

// GetTopLevelComments pages through a video's live top-level comments.
// Soft-deleted parents are excluded here even when they still anchor
// replies.
func GetTopLevelComments(ctx context.Context, videoId int64, sortBy, order string, page, pageSize int64) ([]*model.Comment, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ? AND parent_id = 0 AND is_deleted = ?", videoId, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	if err := query.Order(commentOrderClause(sortBy, order)).
		Limit(int(pageSize)).Offset(int((page - 1) * pageSize)).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// GetReplies returns the non-deleted children of the given parents in
// creation order, which is exactly the append order of the reply sequence.
func GetReplies(ctx context.Context, parentIds []int64) ([]*model.Comment, error) {
	replies := make([]*model.Comment, 0)
	if len(parentIds) == 0 {
		return replies, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("parent_id IN (?) AND is_deleted = ?", parentIds, false).
		Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

func CountComments(ctx context.Context) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func DeleteCommentsByVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error
}

func DeleteCommentsByUser(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Comment{}).Error
}

// GetVideoForComment loads the video a comment operation targets; used by
// the service layer for existence checks.
func GetVideoForComment(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "GetVideoForComment failed for video %d", videoId)
	}
	return &video, nil
}

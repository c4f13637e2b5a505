package db

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/pkg/utils"
)

// ToggleVideoLike flips the (user, video) like edge inside one transaction:
// row-lock the video, insert or delete the edge, recompute like_count as the
// edge cardinality. The count is never incremented in place, so it cannot
// drift from the set it summarizes.
func ToggleVideoLike(ctx context.Context, videoId, userId int64) (liked bool, likeCount int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("video_id = ?", videoId).First(&video).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&model.VideoLike{}).
			Where("video_id = ? AND user_id = ?", videoId, userId).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Where("video_id = ? AND user_id = ?", videoId, userId).
				Delete(&model.VideoLike{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			like := &model.VideoLike{
				VideoLikeId: utils.GenerateID(),
				VideoId:     videoId,
				UserId:      userId,
				CreatedAt:   time.Now(),
			}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			liked = true
		}

		if err := tx.Model(&model.VideoLike{}).
			Where("video_id = ?", videoId).Count(&likeCount).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).
			Where("video_id = ?", videoId).Update("like_count", likeCount).Error
	})
	return liked, likeCount, err
}

// ToggleCommentLike mirrors ToggleVideoLike for comment targets.
func ToggleCommentLike(ctx context.Context, commentId, userId int64) (liked bool, likeCount int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&model.CommentLike{}).
			Where("comment_id = ? AND user_id = ?", commentId, userId).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Where("comment_id = ? AND user_id = ?", commentId, userId).
				Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			like := &model.CommentLike{
				CommentLikeId: utils.GenerateID(),
				CommentId:     commentId,
				UserId:        userId,
				CreatedAt:     time.Now(),
			}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			liked = true
		}

		if err := tx.Model(&model.CommentLike{}).
			Where("comment_id = ?", commentId).Count(&likeCount).Error; err != nil {
			return err
		}
		return tx.Model(&model.Comment{}).
			Where("comment_id = ?", commentId).Update("like_count", likeCount).Error
	})
	return liked, likeCount, err
}

// GetLikedVideoIds lists the videos a user currently likes, most recent
// like first.
func GetLikedVideoIds(ctx context.Context, userId, page, pageSize int64) ([]int64, int64, error) {
	query := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0)
	if err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((page-1)*pageSize)).
		Select("video_id").Scan(&ids).Error; err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

func GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func IsVideoLikedByUser(ctx context.Context, videoId, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func DeleteLikesByVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.VideoLike{}).Error
}

// DeleteCommentLikesByVideo clears the likes on every comment of the video.
// Must run before the comment rows themselves are deleted, the subquery
// needs them.
func DeleteCommentLikesByVideo(ctx context.Context, videoId int64) error {
	sub := DB.Model(&model.Comment{}).Select("comment_id").Where("video_id = ?", videoId)
	return DB.WithContext(ctx).Where("comment_id IN (?)", sub).Delete(&model.CommentLike{}).Error
}

// DeleteCommentLikesByCommentAuthor clears the likes other users left on
// the given author's comments. Same ordering constraint as
// DeleteCommentLikesByVideo.
func DeleteCommentLikesByCommentAuthor(ctx context.Context, userId int64) error {
	sub := DB.Model(&model.Comment{}).Select("comment_id").Where("user_id = ?", userId)
	return DB.WithContext(ctx).Where("comment_id IN (?)", sub).Delete(&model.CommentLike{}).Error
}

func DeleteLikesByUser(ctx context.Context, userId int64) error {
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.VideoLike{}).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.CommentLike{}).Error
}

package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/pkg/constants"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed for %q", video.Title)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// UpdateVideoInfo applies the author-editable fields. Owner and media
// locator are never part of the map.
func UpdateVideoInfo(ctx context.Context, videoId int64, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoInfo failed for video %d", videoId)
	}
	return nil
}

// FinishProcessing moves a video out of the processing state. The guard on
// the current status makes redelivered pipeline events no-ops and keeps
// completed/failed terminal.
func FinishProcessing(ctx context.Context, videoId int64, succeeded bool) error {
	fields := map[string]interface{}{
		"processing_status": constants.ProcessingStatusFailed,
	}
	if succeeded {
		fields["processing_status"] = constants.ProcessingStatusCompleted
		fields["upload_progress"] = 100
	}
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND processing_status = ?", videoId, constants.ProcessingStatusRunning).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error
}

func DeleteVideosByUser(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Video{}).Error
}

func GetVideoIdsByUser(ctx context.Context, userId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).Select("video_id").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// sortColumns whitelists the fields a caller may sort listings by.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"views":      "views",
	"like_count": "like_count",
	"title":      "title",
	"duration":   "duration",
}

func orderClause(sortBy, order string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = constants.DefaultSortBy
	}
	if order != constants.OrderAsc {
		order = constants.OrderDesc
	}
	return column + " " + order
}

// QueryPublicVideos lists the publicly visible feed: completed processing
// and author-flagged public, with optional category filter and LIKE search
// over title/description/tags.
func QueryPublicVideos(ctx context.Context, category, keyword, sortBy, order string, page, pageSize int64) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).
		Where("processing_status = ? AND is_public = ?", constants.ProcessingStatusCompleted, true)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR tags LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []*model.Video
	if err := query.Order(orderClause(sortBy, order)).
		Limit(int(pageSize)).Offset(int((page - 1) * pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryPublicVideos failed")
	}
	return videos, total, nil
}

// QueryUserVideos lists everything one uploader owns, any status, any
// visibility. Callers gate this to the owner.
func QueryUserVideos(ctx context.Context, userId int64, sortBy, order string, page, pageSize int64) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []*model.Video
	if err := query.Order(orderClause(sortBy, order)).
		Limit(int(pageSize)).Offset(int((page - 1) * pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// GetChannelVideos is the channel page listing: the owner's completed
// public videos, newest first.
func GetChannelVideos(ctx context.Context, ownerId int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND processing_status = ? AND is_public = ?",
			ownerId, constants.ProcessingStatusCompleted, true).
		Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// IncrementViews bumps the view counter in the store and reads the new
// value back inside the same transaction. The row lock serializes
// concurrent viewers so no increment is lost.
func IncrementViews(ctx context.Context, videoId int64) (int64, error) {
	var views int64
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("video_id = ?", videoId).First(&video).Error; err != nil {
			return err
		}
		views = video.Views + 1
		return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
			Update("views", views).Error
	})
	if err != nil {
		return 0, err
	}
	return views, nil
}

func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func CountVideos(ctx context.Context) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func RecentVideos(ctx context.Context, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Order("created_at DESC").Limit(limit).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// QueryVideosAdmin lists videos across all owners with optional processing
// status filter and title/description search.
func QueryVideosAdmin(ctx context.Context, keyword, status string, page, pageSize int64) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if status != "" && status != "all" {
		query = query.Where("processing_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []*model.Video
	if err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((page - 1) * pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

package db

import (
	"context"

	"github.com/vidloom/vidloom/cmd/model"
)

// Watch history is append-only; nothing ever updates an entry in place.

func InsertWatchHistory(ctx context.Context, entry *model.WatchHistory) error {
	return DB.WithContext(ctx).Create(entry).Error
}

func QueryWatchHistory(ctx context.Context, userId, page, pageSize int64) ([]*model.WatchHistory, int64, error) {
	query := DB.WithContext(ctx).Model(&model.WatchHistory{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []*model.WatchHistory
	if err := query.Order("watched_at DESC").
		Limit(int(pageSize)).Offset(int((page - 1) * pageSize)).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func DeleteWatchHistoryByUser(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.WatchHistory{}).Error
}

package db

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/pkg/utils"
)

// The edge between a subscriber and a channel is stored on both sides, the
// way the two owning user documents would each carry it. An edge only
// exists when both rows agree; a lone row is treated as "not subscribed"
// and healed by rewriting the minority side.

func edgeSides(tx *gorm.DB, userId, channelId int64) (hasSubscription, hasSubscriber bool, err error) {
	var count int64
	if err = tx.Model(&model.Subscription{}).
		Where("user_id = ? AND channel_id = ?", userId, channelId).Count(&count).Error; err != nil {
		return false, false, err
	}
	hasSubscription = count > 0

	if err = tx.Model(&model.Subscriber{}).
		Where("channel_id = ? AND user_id = ?", channelId, userId).Count(&count).Error; err != nil {
		return false, false, err
	}
	hasSubscriber = count > 0
	return hasSubscription, hasSubscriber, nil
}

func insertEdge(tx *gorm.DB, userId, channelId int64, hasSubscription, hasSubscriber bool) error {
	now := time.Now()
	if !hasSubscription {
		if err := tx.Create(&model.Subscription{
			SubscriptionId: utils.GenerateID(),
			UserId:         userId,
			ChannelId:      channelId,
			CreatedAt:      now,
		}).Error; err != nil {
			return err
		}
	}
	if !hasSubscriber {
		if err := tx.Create(&model.Subscriber{
			SubscriberId: utils.GenerateID(),
			ChannelId:    channelId,
			UserId:       userId,
			CreatedAt:    now,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteEdge(tx *gorm.DB, userId, channelId int64) error {
	if err := tx.Where("user_id = ? AND channel_id = ?", userId, channelId).
		Delete(&model.Subscription{}).Error; err != nil {
		return err
	}
	return tx.Where("channel_id = ? AND user_id = ?", channelId, userId).
		Delete(&model.Subscriber{}).Error
}

// refreshSubscriberCount rewrites the cached count on the channel owner's
// user row from the owning set's cardinality, inside the same transaction
// as the edge mutation.
func refreshSubscriberCount(tx *gorm.DB, channelId int64) (int64, error) {
	var count int64
	if err := tx.Model(&model.Subscriber{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&model.User{}).
		Where("user_id = ?", channelId).Update("subscriber_count", count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ToggleSubscription flips the edge. Membership is read from both sides;
// "subscribed" is only true when both agree, so a pre-existing one-sided
// edge toggles to a clean fully-present edge rather than flapping.
func ToggleSubscription(ctx context.Context, userId, channelId int64) (subscribed bool, subscriberCount int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// lock the channel owner's row; it carries the cached count and
		// serializes concurrent subscribers of the same channel
		var channel model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", channelId).First(&channel).Error; err != nil {
			return err
		}

		hasSubscription, hasSubscriber, err := edgeSides(tx, userId, channelId)
		if err != nil {
			return err
		}

		if hasSubscription && hasSubscriber {
			if err := deleteEdge(tx, userId, channelId); err != nil {
				return err
			}
			subscribed = false
		} else {
			if err := insertEdge(tx, userId, channelId, hasSubscription, hasSubscriber); err != nil {
				return err
			}
			subscribed = true
		}

		subscriberCount, err = refreshSubscriberCount(tx, channelId)
		return err
	})
	return subscribed, subscriberCount, err
}

// IsSubscribed answers membership for read paths, self-healing any
// one-sided edge it encounters: disagreement reads as "not subscribed" and
// the minority side is removed.
func IsSubscribed(ctx context.Context, userId, channelId int64) (bool, error) {
	var subscribed bool
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hasSubscription, hasSubscriber, err := edgeSides(tx, userId, channelId)
		if err != nil {
			return err
		}
		if hasSubscription != hasSubscriber {
			if err := deleteEdge(tx, userId, channelId); err != nil {
				return err
			}
			if _, err := refreshSubscriberCount(tx, channelId); err != nil {
				return err
			}
			subscribed = false
			return nil
		}
		subscribed = hasSubscription
		return nil
	})
	return subscribed, err
}

// ReconcileChannel sweeps one channel for one-sided edges and removes them.
// Safe to run any time; with transactional toggles it only ever repairs
// damage from partial writes outside this code path.
func ReconcileChannel(ctx context.Context, channelId int64) (repaired int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subscriberSide := make([]int64, 0)
		if err := tx.Model(&model.Subscriber{}).
			Where("channel_id = ?", channelId).Select("user_id").Scan(&subscriberSide).Error; err != nil {
			return err
		}
		subscriptionSide := make([]int64, 0)
		if err := tx.Model(&model.Subscription{}).
			Where("channel_id = ?", channelId).Select("user_id").Scan(&subscriptionSide).Error; err != nil {
			return err
		}

		onSubscription := make(map[int64]bool, len(subscriptionSide))
		for _, id := range subscriptionSide {
			onSubscription[id] = true
		}
		onSubscriber := make(map[int64]bool, len(subscriberSide))
		for _, id := range subscriberSide {
			onSubscriber[id] = true
		}

		for _, id := range subscriberSide {
			if !onSubscription[id] {
				if err := deleteEdge(tx, id, channelId); err != nil {
					return err
				}
				repaired++
			}
		}
		for _, id := range subscriptionSide {
			if !onSubscriber[id] {
				if err := deleteEdge(tx, id, channelId); err != nil {
					return err
				}
				repaired++
			}
		}

		_, err := refreshSubscriberCount(tx, channelId)
		return err
	})
	return repaired, err
}

// GetSubscriberIds pages through who follows a channel, newest first.
func GetSubscriberIds(ctx context.Context, channelId, page, pageSize int64) ([]int64, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Subscriber{}).Where("channel_id = ?", channelId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0)
	if err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((page-1)*pageSize)).
		Select("user_id").Scan(&ids).Error; err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

// GetSubscriptionIds pages through the channels one user follows.
func GetSubscriptionIds(ctx context.Context, userId, page, pageSize int64) ([]int64, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Subscription{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0)
	if err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((page-1)*pageSize)).
		Select("channel_id").Scan(&ids).Error; err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

// DeleteEdgesForUser removes every edge touching a deleted account, both as
// subscriber and as channel, and refreshes the counts of affected channels.
func DeleteEdgesForUser(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected := make([]int64, 0)
		if err := tx.Model(&model.Subscription{}).
			Where("user_id = ?", userId).Select("channel_id").Scan(&affected).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ? OR channel_id = ?", userId, userId).
			Delete(&model.Subscription{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR channel_id = ?", userId, userId).
			Delete(&model.Subscriber{}).Error; err != nil {
			return err
		}

		for _, channelId := range affected {
			if _, err := refreshSubscriberCount(tx, channelId); err != nil {
				return err
			}
		}
		return nil
	})
}

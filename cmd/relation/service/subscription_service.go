package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/relation/dal/db"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	"github.com/vidloom/vidloom/pkg/cache"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

type SubscribeResult struct {
	Subscribed      bool  `json:"subscribed"`
	SubscriberCount int64 `json:"subscriber_count"`
}

// Subscribe toggles the edge between the caller and a channel. Both stored
// sides move together and the cached subscriber count is rewritten from the
// channel-side set in the same operation.
func (s *SubscriptionService) Subscribe(ctx context.Context, userId, channelId int64) (*SubscribeResult, error) {
	if userId == channelId {
		return nil, errno.InvalidOperationErr.WithMessage("cannot subscribe to your own channel")
	}
	if _, err := userdb.GetUserById(ctx, channelId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("channel not found")
		}
		return nil, err
	}

	mutex := cache.NewTargetMutex("subscription", channelId)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errno.RedisErr.WithMessage("could not acquire subscription lock")
	}
	defer mutex.UnlockContext(ctx)

	subscribed, subscriberCount, err := db.ToggleSubscription(ctx, userId, channelId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("channel not found")
		}
		return nil, err
	}

	hlog.CtxInfof(ctx, "user %d toggled subscription to channel %d, subscribed=%v", userId, channelId, subscribed)
	return &SubscribeResult{Subscribed: subscribed, SubscriberCount: subscriberCount}, nil
}

// IsSubscribed reports membership, self-healing one-sided edges on the way.
func (s *SubscriptionService) IsSubscribed(ctx context.Context, userId, channelId int64) (bool, error) {
	if userId <= 0 || userId == channelId {
		return false, nil
	}
	return db.IsSubscribed(ctx, userId, channelId)
}

type SubscriberList struct {
	Subscribers []*model.User    `json:"subscribers"`
	Pagination  model.Pagination `json:"pagination"`
}

// Subscribers pages through a channel's followers.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelId, page, pageSize int64) (*SubscriberList, error) {
	if _, err := userdb.GetUserById(ctx, channelId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("channel not found")
		}
		return nil, err
	}

	page, pageSize = utils.NormalizePage(page, pageSize)
	ids, total, err := db.GetSubscriberIds(ctx, channelId, page, pageSize)
	if err != nil {
		return nil, err
	}

	subscribers := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		user, err := userdb.GetUserById(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		subscribers = append(subscribers, user)
	}

	return &SubscriberList{
		Subscribers: subscribers,
		Pagination:  model.NewPagination(page, pageSize, total),
	}, nil
}

type SubscriptionList struct {
	Channels   []*model.User    `json:"channels"`
	Pagination model.Pagination `json:"pagination"`
}

// Subscriptions pages through the channels the user follows.
func (s *SubscriptionService) Subscriptions(ctx context.Context, userId, page, pageSize int64) (*SubscriptionList, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	ids, total, err := db.GetSubscriptionIds(ctx, userId, page, pageSize)
	if err != nil {
		return nil, err
	}

	channels := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		channel, err := userdb.GetUserById(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		channels = append(channels, channel)
	}

	return &SubscriptionList{
		Channels:   channels,
		Pagination: model.NewPagination(page, pageSize, total),
	}, nil
}

// Reconcile sweeps a channel for one-sided edges; exposed for operational
// use and exercised by the read paths indirectly.
func (s *SubscriptionService) Reconcile(ctx context.Context, channelId int64) (int64, error) {
	repaired, err := db.ReconcileChannel(ctx, channelId)
	if err != nil {
		return 0, err
	}
	if repaired > 0 {
		hlog.CtxWarnf(ctx, "reconciled %d one-sided subscription edges for channel %d", repaired, channelId)
	}
	return repaired, nil
}

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/relation/dal/db"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

func TestSubscribeToOwnChannelRejected(t *testing.T) {
	svc := NewSubscriptionService(context.Background())

	// rejected before any lookup, so this needs no database
	_, err := svc.Subscribe(context.Background(), 7, 7)
	if err == nil {
		t.Fatal("subscribing to your own channel should fail")
	}
	if e := errno.ConvertErr(err); e.ErrCode != errno.InvalidOperationCode {
		t.Errorf("got code %d, want %d", e.ErrCode, errno.InvalidOperationCode)
	}
}

func TestIsSubscribedToSelf(t *testing.T) {
	svc := NewSubscriptionService(context.Background())

	subscribed, err := svc.IsSubscribed(context.Background(), 7, 7)
	if err != nil {
		t.Fatal(err)
	}
	if subscribed {
		t.Error("a user is never subscribed to themselves")
	}
}

func seedUser(t *testing.T, prefix string) *model.User {
	t.Helper()
	id := utils.GenerateID()
	user := &model.User{
		UserId:      id,
		UserName:    fmt.Sprintf("%s-%d", prefix, id),
		Email:       fmt.Sprintf("%s-%d@test.local", prefix, id),
		ChannelName: prefix,
	}
	if err := userdb.DB.Create(user).Error; err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		userdb.DB.Where("user_id = ?", user.UserId).Delete(&model.User{})
	})
	return user
}

func TestSubscriptionsListsFollowedChannels(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	db.Init()
	userdb.Init()

	ctx := context.Background()
	follower := seedUser(t, "follower")
	channel := seedUser(t, "channel")
	t.Cleanup(func() {
		db.DB.Where("user_id = ?", follower.UserId).Delete(&model.Subscription{})
		db.DB.Where("channel_id = ?", channel.UserId).Delete(&model.Subscriber{})
	})

	if _, _, err := db.ToggleSubscription(ctx, follower.UserId, channel.UserId); err != nil {
		t.Fatal(err)
	}

	svc := NewSubscriptionService(ctx)
	list, err := svc.Subscriptions(ctx, follower.UserId, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Channels) != 1 || list.Channels[0].UserId != channel.UserId {
		t.Fatalf("got %d channels, want just %d", len(list.Channels), channel.UserId)
	}
	if list.Pagination.CurrentPage != 1 || list.Pagination.TotalCount != 1 {
		t.Errorf("pagination page=%d total=%d, want 1/1", list.Pagination.CurrentPage, list.Pagination.TotalCount)
	}
}

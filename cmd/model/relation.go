package model

import "time"

// The subscription edge is stored twice, once per side, mirroring the two
// user documents it belongs to. An edge only counts when both rows exist;
// a one-sided row is a partial write waiting for reconciliation.

// Subscription is the subscriber-side row: user_id follows channel_id.
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id" gorm:"primaryKey"`
	UserId         int64     `json:"user_id" gorm:"uniqueIndex:idx_user_channel"`
	ChannelId      int64     `json:"channel_id" gorm:"uniqueIndex:idx_user_channel"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "user_subscriptions"
}

// Subscriber is the channel-side row: channel_id is followed by user_id.
type Subscriber struct {
	SubscriberId int64     `json:"subscriber_id" gorm:"primaryKey"`
	ChannelId    int64     `json:"channel_id" gorm:"uniqueIndex:idx_channel_user"`
	UserId       int64     `json:"user_id" gorm:"uniqueIndex:idx_channel_user"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Subscriber) TableName() string {
	return "channel_subscribers"
}

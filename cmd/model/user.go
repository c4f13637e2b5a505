package model

import "time"

type User struct {
	UserId             int64     `json:"user_id" gorm:"primaryKey"`
	UserName           string    `json:"user_name" gorm:"size:30;uniqueIndex"`
	Email              string    `json:"email" gorm:"size:120;uniqueIndex"`
	Password           string    `json:"-"`
	AvatarUrl          string    `json:"avatar_url"`
	Role               string    `json:"role" gorm:"size:10;default:user"`
	ChannelName        string    `json:"channel_name"`
	ChannelDescription string    `json:"channel_description"`
	ChannelBanner      string    `json:"channel_banner"`
	SubscriberCount    int64     `json:"subscriber_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// WatchHistory is an append-only record of views by a signed-in user.
type WatchHistory struct {
	WatchHistoryId int64     `json:"watch_history_id" gorm:"primaryKey"`
	UserId         int64     `json:"user_id" gorm:"index"`
	VideoId        int64     `json:"video_id"`
	WatchedAt      time.Time `json:"watched_at"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}

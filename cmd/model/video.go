package model

import (
	"strings"
	"time"
)

type Video struct {
	VideoId          int64     `json:"video_id" gorm:"primaryKey"`
	UserId           int64     `json:"user_id" gorm:"index"`
	Title            string    `json:"title" gorm:"size:100"`
	Description      string    `json:"description" gorm:"size:5000"`
	VideoUrl         string    `json:"video_url"`
	ThumbnailUrl     string    `json:"thumbnail_url"`
	Duration         int64     `json:"duration"`
	Views            int64     `json:"views"`
	LikeCount        int64     `json:"like_count"`
	Tags             string    `json:"tags"`
	Category         string    `json:"category" gorm:"size:20;index"`
	IsPublic         bool      `json:"is_public"`
	ProcessingStatus string    `json:"processing_status" gorm:"size:12;index"`
	FileSize         int64     `json:"file_size"`
	UploadProgress   int64     `json:"upload_progress"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// TagList splits the stored comma-joined tags back into a slice.
func (v *Video) TagList() []string {
	if v.Tags == "" {
		return nil
	}
	return strings.Split(v.Tags, ",")
}

// VideoLike is one (user, video) like edge; like_count on the video is
// always recomputed from these rows, never incremented in place.
type VideoLike struct {
	VideoLikeId int64     `json:"video_like_id" gorm:"primaryKey"`
	VideoId     int64     `json:"video_id" gorm:"uniqueIndex:idx_video_user"`
	UserId      int64     `json:"user_id" gorm:"uniqueIndex:idx_video_user"`
	CreatedAt   time.Time `json:"created_at"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}

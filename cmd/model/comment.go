package model

import "time"

// Comment with ParentId = 0 is top-level; replies point at a top-level
// comment, never at another reply. Soft delete keeps the row so the thread
// shape survives.
type Comment struct {
	CommentId int64      `json:"comment_id" gorm:"primaryKey"`
	VideoId   int64      `json:"video_id" gorm:"index:idx_video_parent"`
	UserId    int64      `json:"user_id" gorm:"index"`
	ParentId  int64      `json:"parent_id" gorm:"index:idx_video_parent"`
	Content   string     `json:"content" gorm:"size:1000"`
	LikeCount int64      `json:"like_count"`
	IsEdited  bool       `json:"is_edited"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentId == 0
}

type CommentLike struct {
	CommentLikeId int64     `json:"comment_like_id" gorm:"primaryKey"`
	CommentId     int64     `json:"comment_id" gorm:"uniqueIndex:idx_comment_user"`
	UserId        int64     `json:"user_id" gorm:"uniqueIndex:idx_comment_user"`
	CreatedAt     time.Time `json:"created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// CommentWithReplies is the listing shape: a top-level comment carrying its
// non-deleted replies in creation order.
type CommentWithReplies struct {
	Comment
	Replies []*Comment `json:"replies"`
}

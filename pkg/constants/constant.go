package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	MaxTitleLen       = 100
	MaxDescriptionLen = 5000
	MaxCommentLen     = 1000
	MaxTagCount       = 10
	MaxChannelNameLen = 50

	// Text stored in place of a soft-deleted comment.
	DeletedCommentText = "[Comment deleted]"

	// Video processing states.
	ProcessingStatusPending   = "pending"
	ProcessingStatusRunning   = "processing"
	ProcessingStatusCompleted = "completed"
	ProcessingStatusFailed    = "failed"

	RoleUser  = "user"
	RoleAdmin = "admin"

	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultSortBy = "created_at"

	// Placeholder asset used until real thumbnail generation exists.
	DefaultThumbnail = "/assets/thumbnails/default-thumbnail.jpg"
)

// VideoCategories is the fixed category enum; anything else is rejected at
// intake and "other" is the default.
var VideoCategories = []string{
	"gaming", "music", "education", "entertainment",
	"technology", "sports", "news", "other",
}

const DefaultCategory = "other"

func IsValidCategory(category string) bool {
	for _, c := range VideoCategories {
		if c == category {
			return true
		}
	}
	return false
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis mirrors of the hot per-video counters. MySQL stays authoritative;
// these exist so read-heavy pages don't hit the videos table per request.
const (
	videoViewsKey     = "video:views:%d"
	videoLikeCountKey = "video:like_count:%d"

	counterExpire = time.Hour
)

type VideoCacheManager struct {
	client *redis.Client
}

func NewVideoCacheManager() *VideoCacheManager {
	return &VideoCacheManager{client: Client}
}

// MirrorViews overwrites the cached view counter with the authoritative
// value read back from the store after an increment.
func (vcm *VideoCacheManager) MirrorViews(ctx context.Context, videoId, views int64) error {
	key := fmt.Sprintf(videoViewsKey, videoId)
	return vcm.client.Set(ctx, key, views, counterExpire).Err()
}

func (vcm *VideoCacheManager) GetViews(ctx context.Context, videoId int64) (int64, bool) {
	key := fmt.Sprintf(videoViewsKey, videoId)
	views, err := vcm.client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return views, true
}

func (vcm *VideoCacheManager) MirrorLikeCount(ctx context.Context, videoId, likeCount int64) error {
	key := fmt.Sprintf(videoLikeCountKey, videoId)
	return vcm.client.Set(ctx, key, likeCount, counterExpire).Err()
}

func (vcm *VideoCacheManager) GetLikeCount(ctx context.Context, videoId int64) (int64, bool) {
	key := fmt.Sprintf(videoLikeCountKey, videoId)
	count, err := vcm.client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return count, true
}

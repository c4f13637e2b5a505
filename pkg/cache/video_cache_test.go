package cache

import (
	"context"
	"testing"

	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/utils"
)

func setupCacheTest(t *testing.T) (context.Context, *VideoCacheManager) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	config.Init()
	Init()
	return context.Background(), NewVideoCacheManager()
}

func TestCounterMirrorRoundTrip(t *testing.T) {
	ctx, vcm := setupCacheTest(t)
	videoId := utils.GenerateID()

	if _, ok := vcm.GetViews(ctx, videoId); ok {
		t.Fatal("unmirrored video should miss")
	}

	if err := vcm.MirrorViews(ctx, videoId, 42); err != nil {
		t.Fatal(err)
	}
	if views, ok := vcm.GetViews(ctx, videoId); !ok || views != 42 {
		t.Errorf("GetViews = %d/%v, want 42/true", views, ok)
	}

	// a rewrite replaces, never accumulates
	if err := vcm.MirrorViews(ctx, videoId, 43); err != nil {
		t.Fatal(err)
	}
	if views, _ := vcm.GetViews(ctx, videoId); views != 43 {
		t.Errorf("GetViews = %d after rewrite, want 43", views)
	}

	if err := vcm.MirrorLikeCount(ctx, videoId, 7); err != nil {
		t.Fatal(err)
	}
	if count, ok := vcm.GetLikeCount(ctx, videoId); !ok || count != 7 {
		t.Errorf("GetLikeCount = %d/%v, want 7/true", count, ok)
	}
}

package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/relwatch/update-backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache[string, int](time.Minute)

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.SetWithTTL("answer", 42, time.Minute)
	v, ok := c.Get("answer")
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewCache[string, int](time.Minute)

	c.SetWithTTL("short", 1, 50*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get("short")
	require.False(t, ok)
}

func TestCacheComputeIfAbsent(t *testing.T) {
	c := NewCache[string, int](time.Minute)

	var computed atomic.Int64
	for i := 0; i < 3; i++ {
		v, err := c.ComputeIfAbsent("key", func() (int, error) {
			computed.Add(1)
			return 7, nil
		})
		require.NoError(t, err)
		require.Equal(t, 7, *v)
	}

	require.Equal(t, int64(1), computed.Load())
}

func TestReleaseCacheGroupSnapshots(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	group := NewReleaseCacheGroup(rdb)

	ctx := context.Background()

	_, ok := group.LoadSnapshot(ctx, "demo-plugin")
	require.False(t, ok)

	group.SaveSnapshot(ctx, "demo-plugin", &model.RemoteRelease{
		TagName:     "1.3.0",
		DownloadURL: "https://example.com/dl/plugin.zip",
	})

	release, ok := group.LoadSnapshot(ctx, "demo-plugin")
	require.True(t, ok)
	require.Equal(t, "1.3.0", release.TagName)
	require.Equal(t, "https://example.com/dl/plugin.zip", release.DownloadURL)
}

func TestReleaseCacheGroupKey(t *testing.T) {
	group := NewReleaseCacheGroup(nil)
	require.Equal(t, "release:snapshot:demo", group.GetCacheKey(snapshotPrefix, "demo"))
}

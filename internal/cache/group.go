package cache

import (
	"context"
	"strings"
	"time"

	"github.com/relwatch/update-backend/internal/model"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const snapshotPrefix = "release:snapshot"

// ReleaseCacheGroup owns the per-check release cache and the redis
// last-known-snapshot store. The in-process entries expire per query
// TTL; snapshots have no TTL and back the stale-over-error fallback.
type ReleaseCacheGroup struct {
	// value store pointer don't modify it
	ReleaseCache *Cache[string, *model.RemoteRelease]

	rdb *redis.Client
}

func (g *ReleaseCacheGroup) GetCacheKey(elems ...string) string {
	return strings.Join(elems, ":")
}

func (g *ReleaseCacheGroup) EvictAll() {
	g.ReleaseCache.EvictAll()
}

// SaveSnapshot records the latest successfully fetched release for a
// key. Snapshots deliberately never expire.
func (g *ReleaseCacheGroup) SaveSnapshot(ctx context.Context, key string, release *model.RemoteRelease) {
	if g.rdb == nil {
		return
	}
	buf, err := sonic.Marshal(release)
	if err != nil {
		zap.L().Warn("failed to marshal release snapshot",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	if err := g.rdb.Set(ctx, g.GetCacheKey(snapshotPrefix, key), buf, 0).Err(); err != nil {
		zap.L().Warn("failed to save release snapshot",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// LoadSnapshot returns the last-known release for a key, if any.
func (g *ReleaseCacheGroup) LoadSnapshot(ctx context.Context, key string) (*model.RemoteRelease, bool) {
	if g.rdb == nil {
		return nil, false
	}
	buf, err := g.rdb.Get(ctx, g.GetCacheKey(snapshotPrefix, key)).Bytes()
	if err != nil {
		return nil, false
	}
	var release model.RemoteRelease
	if err := sonic.Unmarshal(buf, &release); err != nil {
		return nil, false
	}
	return &release, true
}

func NewReleaseCacheGroup(rdb *redis.Client) *ReleaseCacheGroup {
	group := &ReleaseCacheGroup{
		ReleaseCache: NewCache[string, *model.RemoteRelease](24 * time.Hour),
		rdb:          rdb,
	}
	if rdb != nil {
		subscribeCacheEvict(rdb, group)
	}
	return group
}

func subscribeCacheEvict(rdb *redis.Client, group *ReleaseCacheGroup) {
	var (
		logger  = zap.L()
		ctx     = context.Background()
		channel = "evict"
	)

	subscribe := rdb.Subscribe(ctx, channel)
	go func() {
		for {
			msg, err := subscribe.ReceiveMessage(ctx)
			if err != nil {
				logger.Error("failed to receive message",
					zap.Error(err),
				)
				time.Sleep(time.Second)
				continue
			}
			group.EvictAll()
			logger.Info("cache evict",
				zap.String("key", msg.Payload),
			)
		}
	}()
}

package logic

import (
	"context"
	"errors"
	"time"

	"github.com/relwatch/update-backend/internal/cache"
	"github.com/relwatch/update-backend/internal/config"
	"github.com/relwatch/update-backend/internal/metrics"
	"github.com/relwatch/update-backend/internal/model"
	"github.com/relwatch/update-backend/internal/pkg/errs"
	"github.com/relwatch/update-backend/internal/source"
	"github.com/relwatch/update-backend/internal/vercomp"

	"github.com/go-redsync/redsync/v4"
	"github.com/golang/groupcache/singleflight"
	"go.uber.org/zap"
)

const (
	fetchLockPrefix = "lock:fetch"
	fetchLockExpiry = 30 * time.Second
)

type CheckerLogic struct {
	logger        *zap.Logger
	conf          *config.Config
	source        source.ReleaseSource
	cacheGroup    *cache.ReleaseCacheGroup
	verComparator *vercomp.VersionComparator
	sync          *redsync.Redsync
	group         singleflight.Group
}

func NewCheckerLogic(
	logger *zap.Logger,
	conf *config.Config,
	src source.ReleaseSource,
	cacheGroup *cache.ReleaseCacheGroup,
	verComparator *vercomp.VersionComparator,
	sync *redsync.Redsync,
) *CheckerLogic {
	return &CheckerLogic{
		logger:        logger,
		conf:          conf,
		source:        src,
		cacheGroup:    cacheGroup,
		verComparator: verComparator,
		sync:          sync,
	}
}

// CheckForUpdate decides whether the queried release endpoint carries a
// version newer than query.CurrentVersion. Failures are carried inside
// the result, never panicked or returned alongside it.
func (l *CheckerLogic) CheckForUpdate(ctx context.Context, query model.ReleaseQuery) model.UpdateResult {
	result := model.UpdateResult{
		CurrentVersion: query.CurrentVersion,
	}

	if query.ReleaseEndpoint == "" || query.CurrentVersion == "" {
		result.Err = errs.ErrInvalidParams
		metrics.ChecksTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return result
	}

	var (
		key = query.Key()
		ttl = query.CacheTTL
	)
	if ttl <= 0 {
		ttl = l.conf.Checker.CacheTTL
	}

	if query.CacheEnabled {
		if release, ok := l.cacheGroup.ReleaseCache.Get(key); ok {
			metrics.CacheHitsTotal.Inc()
			return l.decide(query, release, false)
		}
	}

	release, err := l.fetch(ctx, query, key, ttl)
	if err != nil {
		// a failed refresh never clears prior state, prefer the
		// last-known snapshot over surfacing the error
		if snapshot, ok := l.cacheGroup.LoadSnapshot(ctx, key); ok {
			l.logger.Warn("serving stale release snapshot",
				zap.String("identifier", query.Identifier),
				zap.Error(err),
			)
			metrics.StaleServedTotal.Inc()
			return l.decide(query, snapshot, true)
		}

		l.logger.Warn("release check failed",
			zap.String("identifier", query.Identifier),
			zap.String("endpoint", query.ReleaseEndpoint),
			zap.Error(err),
		)
		metrics.ChecksTotal.WithLabelValues(metrics.OutcomeError).Inc()
		result.Err = err
		return result
	}

	return l.decide(query, release, false)
}

// fetch loads the latest release from the endpoint, deduplicating
// concurrent same-key fetches in-process and, best effort, across
// instances. The cache is written only on success.
func (l *CheckerLogic) fetch(ctx context.Context, query model.ReleaseQuery, key string, ttl time.Duration) (*model.RemoteRelease, error) {
	do := func() (*model.RemoteRelease, error) {
		var (
			release *model.RemoteRelease
			err     error
		)
		l.withFetchLock(ctx, key, func() {
			release, err = l.source.FetchLatest(ctx, source.FetchQuery{
				Endpoint:  query.ReleaseEndpoint,
				AuthToken: query.AuthToken,
			})
			if err != nil {
				metrics.FetchesTotal.WithLabelValues(fetchResultLabel(err)).Inc()
				return
			}
			metrics.FetchesTotal.WithLabelValues(metrics.ResultOK).Inc()

			// a forced refresh replaces the cached entry too, later
			// cached checks must not resurrect the superseded release
			l.cacheGroup.ReleaseCache.SetWithTTL(key, release, ttl)
			l.cacheGroup.SaveSnapshot(ctx, key, release)
		})
		return release, err
	}

	if !query.CacheEnabled {
		// cache bypass means every call fetches, no dedup
		return do()
	}

	v, err := l.group.Do(key, func() (any, error) {
		return do()
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.RemoteRelease), nil
}

// withFetchLock runs fn holding a best-effort cross-instance lock.
// Losing the lock is not an error, concurrent refreshes are idempotent
// and last-writer-wins is acceptable.
func (l *CheckerLogic) withFetchLock(ctx context.Context, key string, fn func()) {
	if l.sync == nil {
		fn()
		return
	}
	mutex := l.sync.NewMutex(
		l.cacheGroup.GetCacheKey(fetchLockPrefix, key),
		redsync.WithExpiry(fetchLockExpiry),
		redsync.WithTries(1),
	)
	if err := mutex.TryLockContext(ctx); err != nil {
		fn()
		return
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()
	fn()
}

func (l *CheckerLogic) decide(query model.ReleaseQuery, release *model.RemoteRelease, stale bool) model.UpdateResult {
	result := model.UpdateResult{
		CurrentVersion: query.CurrentVersion,
		LatestVersion:  release.TagName,
		Stale:          stale,
	}

	eligible, comparable := l.verComparator.Eligible(query.CurrentVersion, release.TagName, query.IncludeMinorBumps)
	if !comparable {
		result.Err = errs.ErrVersionUnparsable.WithDetails(map[string]string{
			"current_version": query.CurrentVersion,
			"latest_version":  release.TagName,
		})
		metrics.ChecksTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return result
	}

	if eligible {
		result.UpdateAvailable = true
		result.DownloadURL = release.DownloadURL
		result.ReleaseNotes = release.ReleaseNotes
		result.PublishedAt = release.PublishedAt
		metrics.ChecksTotal.WithLabelValues(metrics.OutcomeUpdate).Inc()
		return result
	}

	metrics.ChecksTotal.WithLabelValues(metrics.OutcomeCurrent).Inc()
	return result
}

func fetchResultLabel(err error) string {
	if errors.Is(err, errs.ErrReleaseMalformed) {
		return metrics.ResultMalformed
	}
	return metrics.ResultNetwork
}

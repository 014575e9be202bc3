package logic

import (
	"context"
	"errors"
	"time"

	"github.com/relwatch/update-backend/internal/config"
	"github.com/relwatch/update-backend/internal/model"
	"github.com/relwatch/update-backend/internal/model/types"
	"github.com/relwatch/update-backend/internal/pkg/errs"
	"github.com/relwatch/update-backend/internal/repo"

	"github.com/go-redsync/redsync/v4"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	sweepLockName   = "lock:sweep"
	sweepLockExpiry = 5 * time.Minute

	checkHistoryLimit = 50
)

type TargetLogic struct {
	logger       *zap.Logger
	conf         *config.Config
	repo         *repo.Repo
	targetRepo   *repo.Target
	recordRepo   *repo.CheckRecord
	checkerLogic *CheckerLogic
	sync         *redsync.Redsync
}

func NewTargetLogic(
	logger *zap.Logger,
	conf *config.Config,
	repoRepo *repo.Repo,
	targetRepo *repo.Target,
	recordRepo *repo.CheckRecord,
	checkerLogic *CheckerLogic,
	sync *redsync.Redsync,
) *TargetLogic {
	return &TargetLogic{
		logger:       logger,
		conf:         conf,
		repo:         repoRepo,
		targetRepo:   targetRepo,
		recordRepo:   recordRepo,
		checkerLogic: checkerLogic,
		sync:         sync,
	}
}

type CreateTargetParam struct {
	Slug              string
	Name              string
	ReleaseEndpoint   string
	AuthToken         string
	InstalledVersion  string
	IncludeMinorBumps bool
	CacheEnabled      bool
	CacheTTLSeconds   int64
}

func (l *TargetLogic) Create(ctx context.Context, param CreateTargetParam) (*types.Target, error) {
	target := &types.Target{
		ID:                ksuid.New().String(),
		Slug:              param.Slug,
		Name:              param.Name,
		ReleaseEndpoint:   param.ReleaseEndpoint,
		AuthToken:         param.AuthToken,
		InstalledVersion:  param.InstalledVersion,
		IncludeMinorBumps: param.IncludeMinorBumps,
		CacheEnabled:      param.CacheEnabled,
		CacheTTLSeconds:   param.CacheTTLSeconds,
	}

	// existence check and insert share one transaction so two
	// concurrent creates of the same slug cannot both pass the check
	err := l.repo.WithTx(ctx, func(tx *gorm.DB) error {
		exists, err := l.targetRepo.ExistsBySlugTx(tx, param.Slug)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrTargetAlreadyExists
		}
		return l.targetRepo.CreateTx(tx, target)
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

func (l *TargetLogic) List(ctx context.Context) ([]types.Target, error) {
	return l.targetRepo.List(ctx)
}

func (l *TargetLogic) Get(ctx context.Context, slug string) (*types.Target, error) {
	target, err := l.targetRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTargetNotFound
		}
		return nil, err
	}
	return target, nil
}

func (l *TargetLogic) Delete(ctx context.Context, slug string) error {
	affected, err := l.targetRepo.DeleteBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrTargetNotFound
	}
	return nil
}

func (l *TargetLogic) BumpInstalled(ctx context.Context, slug, version string) error {
	affected, err := l.targetRepo.UpdateInstalledVersion(ctx, slug, version)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrTargetNotFound
	}
	return nil
}

func (l *TargetLogic) History(ctx context.Context, slug string) ([]types.CheckRecord, error) {
	target, err := l.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	return l.recordRepo.ListByTarget(ctx, target.ID, checkHistoryLimit)
}

// Check runs the update check for one registered target and appends an
// audit row.
func (l *TargetLogic) Check(ctx context.Context, slug string) (model.UpdateResult, error) {
	target, err := l.Get(ctx, slug)
	if err != nil {
		return model.UpdateResult{}, err
	}
	return l.checkTarget(ctx, target), nil
}

// CheckAll sweeps every registered target. Only one instance runs a
// sweep at a time, a second caller gets ErrSweepInProgress.
func (l *TargetLogic) CheckAll(ctx context.Context) ([]model.TargetCheckOutcome, error) {
	release, err := l.acquireSweepLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	targets, err := l.targetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var (
		outcomes = make([]model.TargetCheckOutcome, len(targets))
		eg, gctx = errgroup.WithContext(ctx)
	)
	limit := l.conf.Checker.SweepConcurrency
	if limit <= 0 {
		limit = config.DefaultSweepConcurrency
	}
	eg.SetLimit(limit)

	for i := range targets {
		i := i
		eg.Go(func() error {
			target := &targets[i]
			result := l.checkTarget(gctx, target)
			outcome := model.TargetCheckOutcome{
				Slug:   target.Slug,
				Result: result,
			}
			if result.Err != nil {
				outcome.Error = result.Err.Error()
			}
			outcomes[i] = outcome
			return nil
		})
	}

	// workers never return an error, failures live in the outcomes
	_ = eg.Wait()

	return outcomes, nil
}

func (l *TargetLogic) checkTarget(ctx context.Context, target *types.Target) model.UpdateResult {
	query := model.ReleaseQuery{
		Identifier:        target.Slug,
		CurrentVersion:    target.InstalledVersion,
		ReleaseEndpoint:   target.ReleaseEndpoint,
		AuthToken:         target.AuthToken,
		IncludeMinorBumps: target.IncludeMinorBumps,
		CacheEnabled:      target.CacheEnabled,
		CacheKey:          target.Slug,
		CacheTTL:          time.Duration(target.CacheTTLSeconds) * time.Second,
	}

	result := l.checkerLogic.CheckForUpdate(ctx, query)

	record := &types.CheckRecord{
		TargetID:        target.ID,
		CurrentVersion:  result.CurrentVersion,
		LatestVersion:   result.LatestVersion,
		UpdateAvailable: result.UpdateAvailable,
		Stale:           result.Stale,
	}
	if result.Err != nil {
		record.Error = result.Err.Error()
	}
	if err := l.recordRepo.Create(ctx, record); err != nil {
		l.logger.Warn("failed to persist check record",
			zap.String("slug", target.Slug),
			zap.Error(err),
		)
	}

	return result
}

func (l *TargetLogic) acquireSweepLock(ctx context.Context) (func(), error) {
	if l.sync == nil {
		return func() {}, nil
	}
	mutex := l.sync.NewMutex(
		sweepLockName,
		redsync.WithExpiry(sweepLockExpiry),
		redsync.WithTries(1),
	)
	if err := mutex.TryLockContext(ctx); err != nil {
		return nil, errs.ErrSweepInProgress.Wrap(err)
	}
	return func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			l.logger.Warn("failed to release sweep lock",
				zap.Error(err),
			)
		}
	}, nil
}

//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/relwatch/update-backend/internal/cache"
	"github.com/relwatch/update-backend/internal/config"
	"github.com/relwatch/update-backend/internal/handler"
	"github.com/relwatch/update-backend/internal/provider"
	"github.com/relwatch/update-backend/internal/vercomp"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HandlerSet struct {
	CheckHandler       *handler.CheckHandler
	TargetHandler      *handler.TargetHandler
	MetricsHandler     *handler.MetricsHandler
	HealthCheckHandler *handler.HealthCheckHandler
}

func NewHandlerSet(
	logger *zap.Logger,
	conf *config.Config,
	db *gorm.DB,
	redSync *redsync.Redsync,
	cacheGroup *cache.ReleaseCacheGroup,
	verComparator *vercomp.VersionComparator,
) *HandlerSet {
	panic(wire.Build(
		provider.RepoSet,
		provider.LogicSet,
		provider.HandlerSet,
		wire.Struct(new(HandlerSet), "*"),
	))
}

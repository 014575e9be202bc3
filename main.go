package main

import (
	"context"

	"github.com/relwatch/update-backend/internal/application"
	"github.com/relwatch/update-backend/internal/cache"
	"github.com/relwatch/update-backend/internal/config"
	"github.com/relwatch/update-backend/internal/db"
	"github.com/relwatch/update-backend/internal/logger"
	"github.com/relwatch/update-backend/internal/middleware"
	"github.com/relwatch/update-backend/internal/pkg/restserver"
	"github.com/relwatch/update-backend/internal/repo"
	"github.com/relwatch/update-backend/internal/vercomp"
	"github.com/relwatch/update-backend/internal/wire"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "github.com/relwatch/update-backend/internal/banner"
)

func main() {

	setUpConfigAndLog()

	conf := config.CFG

	dataSource, err := db.NewDataSource(conf)
	if err != nil {
		zap.L().Fatal("failed to connect to database",
			zap.Error(err),
		)
	}

	if err := repo.NewRepo(dataSource).Migrate(); err != nil {
		zap.L().Fatal("failed creating schema",
			zap.Error(err),
		)
	}

	// deps
	var (
		rdb           = db.NewRedis(conf)
		redSync       = db.NewRedSync(rdb)
		group         = cache.NewReleaseCacheGroup(rdb)
		verComparator = vercomp.NewComparator()
		restServer    = fiber.New(fiber.Config{
			ProxyHeader: fiber.HeaderXForwardedFor,
		})
	)

	handlerSet := wire.NewHandlerSet(zap.L(), conf, dataSource, redSync, group, verComparator)

	initRoute(restServer, handlerSet)

	app := application.New()
	app.AddAdapter(restserver.NewAdapter(restServer, conf))
	app.Run(context.Background())
}

func setUpConfigAndLog() {
	config.CFG = config.New()
	zap.ReplaceGlobals(logger.New(config.CFG))
}

func initRoute(app *fiber.App, handlerSet *wire.HandlerSet) {
	app.Use(middleware.NewRequestID())
	app.Use(fiberzap.New(fiberzap.Config{
		Logger: zap.L(),
	}))

	r := app.Group("/")

	handlerSet.CheckHandler.Register(r)

	handlerSet.TargetHandler.Register(r)

	handlerSet.HealthCheckHandler.Register(r)

	handlerSet.MetricsHandler.Register(r)
}

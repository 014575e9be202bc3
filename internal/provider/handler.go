package provider

import (
	"github.com/relwatch/update-backend/internal/handler"

	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	handler.NewCheckHandler,
	handler.NewTargetHandler,
	handler.NewMetricsHandler,
	handler.NewHealthCheckHandler,
)

package restserver

import (
	"context"
	"fmt"

	"github.com/relwatch/update-backend/internal/application"
	"github.com/relwatch/update-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

func NewAdapter(restServer *fiber.App, conf *config.Config) application.Adapter {
	return &Adapter{
		restServer: restServer,
		conf:       conf,
	}
}

type Adapter struct {
	restServer *fiber.App
	conf       *config.Config
}

func (a Adapter) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", a.conf.Server.Port)
	return a.restServer.Listen(addr)
}

func (a Adapter) Stop(ctx context.Context) error {
	return a.restServer.Shutdown()
}

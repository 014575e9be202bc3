package handler

import (
	"github.com/relwatch/update-backend/internal/handler/response"
	"github.com/relwatch/update-backend/internal/logic"
	"github.com/relwatch/update-backend/internal/model"
	"github.com/relwatch/update-backend/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TargetHandler struct {
	logger      *zap.Logger
	targetLogic *logic.TargetLogic
}

func NewTargetHandler(logger *zap.Logger, targetLogic *logic.TargetLogic) *TargetHandler {
	return &TargetHandler{
		logger:      logger,
		targetLogic: targetLogic,
	}
}

func (h *TargetHandler) Register(r fiber.Router) {
	r.Post("/targets", h.Create)
	r.Get("/targets", h.List)
	r.Post("/targets/check", h.CheckAll)
	r.Get("/targets/:slug", h.Get)
	r.Delete("/targets/:slug", h.Delete)
	r.Post("/targets/:slug/check", h.Check)
	r.Patch("/targets/:slug/version", h.BumpInstalled)
	r.Get("/targets/:slug/history", h.History)
}

func (h *TargetHandler) Create(c *fiber.Ctx) error {
	var req model.CreateTargetRequest
	if err := validator.ValidateBody(c, &req); err != nil {
		return Error(c, err)
	}

	cacheEnabled := true
	if req.CacheEnabled != nil {
		cacheEnabled = *req.CacheEnabled
	}

	target, err := h.targetLogic.Create(c.UserContext(), logic.CreateTargetParam{
		Slug:              req.Slug,
		Name:              req.Name,
		ReleaseEndpoint:   req.ReleaseEndpoint,
		AuthToken:         req.AuthToken,
		InstalledVersion:  req.InstalledVersion,
		IncludeMinorBumps: req.IncludeMinorBumps,
		CacheEnabled:      cacheEnabled,
		CacheTTLSeconds:   req.CacheTTLSeconds,
	})
	if err != nil {
		return Error(c, err)
	}

	h.logger.Info("target registered",
		zap.String("slug", target.Slug),
		zap.String("endpoint", target.ReleaseEndpoint),
	)

	return c.Status(fiber.StatusCreated).JSON(response.Success(target))
}

func (h *TargetHandler) List(c *fiber.Ctx) error {
	targets, err := h.targetLogic.List(c.UserContext())
	if err != nil {
		return Error(c, err)
	}
	return c.JSON(response.Success(targets))
}

func (h *TargetHandler) Get(c *fiber.Ctx) error {
	target, err := h.targetLogic.Get(c.UserContext(), c.Params("slug"))
	if err != nil {
		return Error(c, err)
	}
	return c.JSON(response.Success(target))
}

func (h *TargetHandler) Delete(c *fiber.Ctx) error {
	if err := h.targetLogic.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return Error(c, err)
	}
	return c.JSON(response.Success(nil))
}

func (h *TargetHandler) Check(c *fiber.Ctx) error {
	result, err := h.targetLogic.Check(c.UserContext(), c.Params("slug"))
	if err != nil {
		return Error(c, err)
	}
	if result.Err != nil {
		return Error(c, result.Err)
	}
	return c.JSON(response.Success(result))
}

func (h *TargetHandler) CheckAll(c *fiber.Ctx) error {
	outcomes, err := h.targetLogic.CheckAll(c.UserContext())
	if err != nil {
		return Error(c, err)
	}
	return c.JSON(response.Success(outcomes))
}

func (h *TargetHandler) BumpInstalled(c *fiber.Ctx) error {
	var req model.BumpInstalledRequest
	if err := validator.ValidateBody(c, &req); err != nil {
		return Error(c, err)
	}

	if err := h.targetLogic.BumpInstalled(c.UserContext(), c.Params("slug"), req.InstalledVersion); err != nil {
		return Error(c, err)
	}
	return c.JSON(response.Success(nil))
}

func (h *TargetHandler) History(c *fiber.Ctx) error {
	records, err := h.targetLogic.History(c.UserContext(), c.Params("slug"))
	if err != nil {
		return Error(c, err)
	}
	return c.JSON(response.Success(records))
}

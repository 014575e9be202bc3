package handler

import (
	"time"

	"github.com/relwatch/update-backend/internal/handler/response"
	"github.com/relwatch/update-backend/internal/logic"
	"github.com/relwatch/update-backend/internal/model"
	"github.com/relwatch/update-backend/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CheckHandler struct {
	logger       *zap.Logger
	checkerLogic *logic.CheckerLogic
}

func NewCheckHandler(logger *zap.Logger, checkerLogic *logic.CheckerLogic) *CheckHandler {
	return &CheckHandler{
		logger:       logger,
		checkerLogic: checkerLogic,
	}
}

func (h *CheckHandler) Register(r fiber.Router) {
	r.Post("/updates/check", h.Check)
}

// Check answers a stateless update check, nothing about the caller is
// persisted.
func (h *CheckHandler) Check(c *fiber.Ctx) error {
	var req model.CheckUpdateRequest
	if err := validator.ValidateBody(c, &req); err != nil {
		return Error(c, err)
	}

	cacheEnabled := true
	if req.CacheEnabled != nil {
		cacheEnabled = *req.CacheEnabled
	}

	query := model.ReleaseQuery{
		Identifier:        req.Identifier,
		CurrentVersion:    req.CurrentVersion,
		ReleaseEndpoint:   req.ReleaseEndpoint,
		AuthToken:         req.AuthToken,
		IncludeMinorBumps: req.IncludeMinorBumps,
		CacheEnabled:      cacheEnabled,
		CacheKey:          req.CacheKey,
		CacheTTL:          time.Duration(req.CacheTTLSeconds) * time.Second,
	}

	result := h.checkerLogic.CheckForUpdate(c.UserContext(), query)
	if result.Err != nil {
		return Error(c, result.Err)
	}

	return c.JSON(response.Success(result))
}

package dlc

import (
	"errors"

	"dlc-checker/core/logger"
	"dlc-checker/feature/manifest"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for DLC checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dlc routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/dlc")
	group.Get("/", h.HandleReport)
	group.Get("/manifest", h.HandleManifest)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleReport returns the installed / not installed report.
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CachedCheck(c.UserContext())
	if err != nil {
		l.Error("DLC check failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleManifest returns the parsed manifest entries.
func (h *Handler) HandleManifest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	m, content, err := h.service.Manifest(c.UserContext())
	if err != nil {
		l.Error("Manifest load failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"origin":  content.Origin,
		"version": m.Version(),
		"entries": m.Entries(),
	})
}

// HandleRefresh drops the memoised report so the next request rescans.
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Report cache invalidated")
	h.service.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}

func statusFor(err error) int {
	if errors.Is(err, manifest.ErrManifestMissing) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

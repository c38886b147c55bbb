package health

import (
	"attendance-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealthCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleHealthCheck runs every health check and combines the reports.
// @Summary Run All Health Checks
// @Description Checks the HR database, the object storage bucket, and lists registered terminals.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	ctx := c.Context()
	report := make(map[string]interface{})

	if db, err := h.service.CheckDatabase(ctx); err != nil {
		report["database"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["database"] = db
	}

	if st, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = st
	}

	report["terminals"] = h.service.Terminals()

	return c.JSON(report)
}

// HandleDatabaseCheck checks the HR database tables.
// @Summary Check Database
// @Description Verifies that the HR master data and ledger tables exist.
// @Tags health
// @Produce json
// @Success 200 {object} health.DatabaseReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase(c.Context())
	if err != nil {
		l.Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleStorageCheck checks the punch dump bucket.
// @Summary Check Storage
// @Description Verifies that the punch dump bucket exists.
// @Tags health
// @Produce json
// @Success 200 {object} health.StorageReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

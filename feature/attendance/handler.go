package attendance

import (
	"errors"

	"attendance-manager/core/ledger"
	"attendance-manager/core/logger"
	"attendance-manager/core/storage"

	core "attendance-manager/core/attendance"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the attendance ledger.
type Handler struct {
	service *Service
	client  storage.Client // nil when object storage is not configured
	bucket  string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, client storage.Client, bucket string) *Handler {
	return &Handler{service: service, client: client, bucket: bucket}
}

// RegisterRoutes registers the attendance routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/attendance")
	group.Get("/", h.HandleQuery)
	group.Get("/export", h.HandleExport)
	group.Post("/export", h.HandleExportToStorage)
	group.Get("/terminals", h.HandleListTerminals)
	group.Post("/sync", h.HandleSyncAll)
	group.Post("/sync/:terminal", h.HandleSyncOne)
	group.Delete("/:id", h.HandleDeleteRecord)
	group.Delete("/", h.HandleDeleteByDate)
	group.Post("/import", h.HandleImport)
}

// HandleQuery returns the ledger records for a date.
// @Summary Query Attendance Ledger
// @Description List attendance records for an exact date with optional filters.
// @Tags attendance
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param code query string false "Employee code substring"
// @Param name query string false "Employee name substring"
// @Param check_in query string false "Exact check-in (HH:MM or -)"
// @Param check_out query string false "Exact check-out (HH:MM or -)"
// @Param status query string false "Exact status"
// @Success 200 {array} attendance.Record
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /attendance [get]
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filter := ledger.Filter{
		Code:     c.Query("code"),
		Name:     c.Query("name"),
		CheckIn:  c.Query("check_in"),
		CheckOut: c.Query("check_out"),
		Status:   core.Status(c.Query("status")),
	}

	records, err := h.service.Query(c.Context(), c.Query("date"), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Ledger query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records)
}

// HandleSyncAll runs a sync across every registered terminal.
// @Summary Sync All Terminals
// @Description Fetch punch batches from all terminals and reconcile them into the ledger in one pass.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body attendance.SyncRequest true "Sync target date"
// @Success 200 {object} syncer.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /attendance/sync [post]
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	report, err := h.service.SyncAll(c.Context(), req.Date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Sync run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleSyncOne runs a quick sync against a single terminal.
// @Summary Quick Sync One Terminal
// @Description Fetch one terminal's punch batch and reconcile it into the ledger.
// @Tags attendance
// @Accept json
// @Produce json
// @Param terminal path string true "Terminal ID"
// @Param request body attendance.SyncRequest true "Sync target date"
// @Success 200 {object} syncer.Report
// @Failure 404 {object} map[string]string "Unknown terminal"
// @Router /attendance/sync/{terminal} [post]
func (h *Handler) HandleSyncOne(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	report, err := h.service.SyncOne(c.Context(), req.Date, c.Params("terminal"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownTerminal):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Quick sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleListTerminals lists the registered terminal ids.
// @Summary List Terminals
// @Tags attendance
// @Produce json
// @Success 200 {array} string
// @Router /attendance/terminals [get]
func (h *Handler) HandleListTerminals(c *fiber.Ctx) error {
	return c.JSON(h.service.ListTerminals())
}

// HandleDeleteRecord deletes one ledger record by id.
// @Summary Delete Attendance Record
// @Description Irreversibly delete one record. Confirmation belongs to the caller.
// @Tags attendance
// @Param id path string true "Record ID"
// @Success 204 "Deleted"
// @Router /attendance/{id} [delete]
func (h *Handler) HandleDeleteRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DeleteRecord(c.Context(), c.Params("id")); err != nil {
		l.Error("Record delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteByDate deletes every ledger record for a date.
// @Summary Delete Attendance Records For Date
// @Description Irreversibly delete all records for one date; returns the count removed.
// @Tags attendance
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /attendance [delete]
func (h *Handler) HandleDeleteByDate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	removed, err := h.service.DeleteAllForDate(c.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Bulk delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"removed": removed})
}

// HandleImport overlays finalized records onto the ledger.
// @Summary Import Attendance Records
// @Description Import already-finalized records, bypassing merge and classification.
// @Tags attendance
// @Accept json
// @Produce json
// @Param rows body []attendance.ImportRow true "Finalized records"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /attendance/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var rows []ImportRow
	if err := c.BodyParser(&rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	imported, err := h.service.ImportRecords(c.Context(), rows)
	if err != nil {
		l.Warn("Import rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"imported": imported})
}

// HandleExport streams the ledger as CSV.
// @Summary Export Ledger As CSV
// @Tags attendance
// @Produce text/csv
// @Param date query string false "Date (YYYY-MM-DD); omit for full ledger"
// @Success 200 {string} string "CSV payload"
// @Router /attendance/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attendance.csv"`)

	if err := h.service.ExportCSV(c.Context(), c.Query("date"), c.Response().BodyWriter()); err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return nil
}

// HandleExportToStorage uploads a CSV snapshot to object storage.
// @Summary Export Ledger To Object Storage
// @Tags attendance
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD); omit for full ledger"
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /attendance/export [post]
func (h *Handler) HandleExportToStorage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if h.client == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "object storage is not configured"})
	}

	objectName, err := h.service.ExportToStorage(c.Context(), h.client, h.bucket, c.Query("date"))
	if err != nil {
		l.Error("Export upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"object": objectName})
}

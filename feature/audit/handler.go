package audit

import (
	"errors"

	"skinfolio/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audit checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleAuditAll)
	group.Get("/snapshots", h.HandleSnapshotCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/archive", h.HandleArchiveCheck)
}

// HandleAuditAll runs every available audit check.
// @Summary Run All Audit Checks
// @Description Runs snapshot consistency, catalog coverage and archive checks and returns a combined report.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleAuditAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running all audit checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if findings, err := h.service.CheckSnapshots(ctx); err != nil {
		report["snapshots"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["snapshots"] = map[string]interface{}{"status": "ok", "findings": findings}
	}

	if coverage, err := h.service.CheckCatalogCoverage(ctx); err != nil {
		report["catalog"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["catalog"] = coverage
	}

	if missing, err := h.service.CheckArchive(ctx); err != nil {
		if errors.Is(err, ErrArchiveDisabled) {
			report["archive"] = map[string]interface{}{"status": "disabled"}
		} else {
			report["archive"] = map[string]interface{}{"status": "error", "error": err.Error()}
		}
	} else {
		report["archive"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	return c.JSON(report)
}

// HandleSnapshotCheck verifies snapshot and item row consistency.
// @Summary Check Snapshot Consistency
// @Description Compares snapshot aggregates against the item rows beneath them and flags disagreements.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Snapshot Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/snapshots [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	findings, err := h.service.CheckSnapshots(c.Context())
	if err != nil {
		l.Error("Snapshot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(findings) > 0 {
		l.Warn("Snapshot inconsistencies detected", zap.Int("count", len(findings)))
	}

	return c.JSON(fiber.Map{
		"status":   "checked",
		"findings": findings,
	})
}

// HandleCatalogCheck reports catalog coverage of owned items.
// @Summary Check Catalog Coverage
// @Description Lists owned item names missing from the catalog and catalog entries without a price.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} checks.CoverageReport "Coverage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	coverage, err := h.service.CheckCatalogCoverage(c.Context())
	if err != nil {
		l.Error("Catalog coverage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(coverage)
}

// HandleArchiveCheck verifies archived payload presence.
// @Summary Check Payload Archive
// @Description Lists successfully synced users that have no raw payload object in the archive bucket.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Archive Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/archive [get]
func (h *Handler) HandleArchiveCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckArchive(c.Context())
	if errors.Is(err, ErrArchiveDisabled) {
		return c.JSON(fiber.Map{"status": "disabled"})
	}
	if err != nil {
		l.Error("Archive check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Unarchived synced users detected", zap.Strings("steam_ids", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

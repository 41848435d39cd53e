package inventory

import (
	"strconv"

	"skinfolio/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory feature.
type Handler struct {
	service *Service
	log     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Post("/:userID/sync", h.HandleSync)
	group.Get("/:userID", h.HandleGetSnapshot)
}

// HandleSync triggers an inventory synchronization for a user.
// @Summary Sync Inventory
// @Description Fetches the user's Steam inventory, matches it against the catalog and replaces the stored snapshot.
// @Tags inventory
// @Accept json
// @Produce json
// @Param userID path int true "Internal User ID"
// @Param options body SyncOptions true "Sync options"
// @Success 200 {object} SyncResult "Sync Result"
// @Failure 400 {object} SyncResult "Consent missing or bad request"
// @Failure 403 {object} SyncResult "Private inventory"
// @Failure 404 {object} SyncResult "Unknown user"
// @Failure 429 {object} SyncResult "Rate limited"
// @Failure 502 {object} SyncResult "Upstream or database failure"
// @Router /inventory/{userID}/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.log, c)

	userID, err := strconv.ParseUint(c.Params("userID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	var opts SyncOptions
	if err := c.BodyParser(&opts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result := h.service.Sync(c.Context(), uint(userID), opts)
	if !result.Success {
		l.Warn("Sync failed",
			zap.Uint64("user_id", userID),
			zap.String("code", string(result.Error)),
			zap.String("message", result.Message))
	}

	return c.Status(statusFor(result)).JSON(result)
}

// HandleGetSnapshot returns the stored snapshot and its item rows.
// @Summary Get Inventory Snapshot
// @Description Returns the last persisted snapshot aggregates and item rows for a user.
// @Tags inventory
// @Produce json
// @Param userID path int true "Internal User ID"
// @Success 200 {object} map[string]interface{} "Snapshot and items"
// @Failure 404 {object} map[string]string "No snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/{userID} [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.log, c)

	userID, err := strconv.ParseUint(c.Params("userID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	snap, err := h.service.store.Get(c.Context(), uint(userID))
	if err != nil {
		l.Error("Failed to load snapshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load snapshot",
		})
	}
	if snap == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no snapshot for user",
		})
	}

	items, err := h.service.store.Items(c.Context(), uint(userID))
	if err != nil {
		l.Error("Failed to load item records", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load item records",
		})
	}

	return c.JSON(fiber.Map{
		"snapshot": snap,
		"items":    items,
	})
}

// statusFor maps a sync outcome onto an HTTP status. The body always
// carries the full result so presentation layers can show the last good
// snapshot alongside the error state.
func statusFor(result *SyncResult) int {
	if result.Success {
		return fiber.StatusOK
	}
	switch result.Error {
	case CodeConsentRequired:
		return fiber.StatusBadRequest
	case CodeUserNotFound:
		return fiber.StatusNotFound
	case CodePrivateInventory:
		return fiber.StatusForbidden
	case CodeRateLimited:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusBadGateway
	}
}

package sync

import (
	"errors"

	"campus-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for synchronization runs.
type Handler struct {
	runner *Runner
}

// NewHandler creates a new HTTP handler.
func NewHandler(runner *Runner) *Handler {
	return &Handler{runner: runner}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/calendars", h.HandleRunCalendars)
	group.Post("/teams", h.HandleRunTeams)
	group.Get("/runs", h.HandleListRuns)
}

// HandleRunCalendars triggers a full synchronization cycle.
// @Summary Run Calendar Sync
// @Description Synchronize the school and athletics calendars from the feed.
// @Tags sync
// @Produce json
// @Success 200 {array} models.SyncRun "Run outcomes (per calendar)"
// @Failure 409 {object} map[string]string "A run is already in progress"
// @Router /sync/calendars [post]
func (h *Handler) HandleRunCalendars(c *fiber.Ctx) error {
	l := logger.WithRayID(h.runner.logger, c)

	runs, err := h.runner.RunCycle(c.Context())
	if errors.Is(err, ErrRunInProgress) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		// Partial failures still produce run records; return them with the
		// error so the caller sees which calendar failed.
		l.Error("Synchronization cycle failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
			"runs":  runs,
		})
	}

	return c.JSON(runs)
}

// HandleRunTeams triggers a roster synchronization.
// @Summary Run Roster Sync
// @Description Replace the stored athletics roster from the feed. Deletes all stored athletics events.
// @Tags sync
// @Produce json
// @Success 200 {object} models.SyncRun "Run outcome"
// @Failure 409 {object} map[string]string "A run is already in progress"
// @Failure 502 {object} map[string]string "Feed or storage failure"
// @Router /sync/teams [post]
func (h *Handler) HandleRunTeams(c *fiber.Ctx) error {
	l := logger.WithRayID(h.runner.logger, c)

	run, err := h.runner.RunTeams(c.Context())
	if errors.Is(err, ErrRunInProgress) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Roster synchronization failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
			"run":   run,
		})
	}

	return c.JSON(run)
}

// HandleListRuns returns recent synchronization runs, newest first.
// @Summary List Sync Runs
// @Description Get recent synchronization run records.
// @Tags sync
// @Produce json
// @Param limit query int false "Maximum rows to return (default 50, max 200)"
// @Success 200 {array} models.SyncRun "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.runner.logger, c)

	runs, err := h.runner.Runs(c.Context(), c.QueryInt("limit"))
	if err != nil {
		l.Error("Run listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(runs)
}

package calendar

import (
	"campus-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the school calendar.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the calendar routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/calendar")
	group.Get("/events", h.HandleListEvents)
}

// HandleListEvents returns the school calendar ordered by start time.
// @Summary List School Calendar Events
// @Description Get all school calendar events ordered by start time.
// @Tags calendar
// @Produce json
// @Success 200 {array} models.CalendarEvent "Events"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /calendar/events [get]
func (h *Handler) HandleListEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	events, err := h.service.Events(c.Context())
	if err != nil {
		l.Error("Calendar listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(events)
}

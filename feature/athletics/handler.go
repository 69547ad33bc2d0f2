package athletics

import (
	"errors"
	"net/url"

	"campus-sync/core/logger"
	"campus-sync/feature/athletics/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for athletics data.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the athletics routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/athletics")
	group.Get("/teams", h.HandleListTeams)
	group.Get("/teams/:teamName/events", h.HandleListTeamEvents)
}

// HandleListTeams returns every team with its games and practices.
// @Summary List Athletics Teams
// @Description Get all athletics teams with their games and practices.
// @Tags athletics
// @Produce json
// @Success 200 {array} models.AthleticsTeam "Teams"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /athletics/teams [get]
func (h *Handler) HandleListTeams(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	teams, err := h.service.Teams(c.Context())
	if err != nil {
		l.Error("Team listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(teams)
}

// HandleListTeamEvents returns one team's events in append order.
// @Summary List Team Events
// @Description Get a team's games and/or practices.
// @Tags athletics
// @Produce json
// @Param teamName path string true "Team name (e.g. 'Varsity Soccer')"
// @Param kind query string false "Filter by kind (game or practice)"
// @Success 200 {array} models.AthleticsEvent "Events"
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 404 {object} map[string]string "Unknown team"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /athletics/teams/{teamName}/events [get]
func (h *Handler) HandleListTeamEvents(c *fiber.Ctx) error {
	// Team names contain spaces ("Varsity Soccer"), so the path segment
	// arrives percent-encoded.
	teamName, err := url.PathUnescape(c.Params("teamName"))
	if err != nil {
		teamName = c.Params("teamName")
	}
	kind := c.Query("kind")
	l := logger.WithRayID(h.service.logger, c)

	if kind != "" && kind != models.KindGame && kind != models.KindPractice {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "kind must be 'game' or 'practice'",
		})
	}

	events, err := h.service.TeamEvents(c.Context(), teamName, kind)
	if errors.Is(err, ErrUnknownTeam) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Team event listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(events)
}

package rank

import (
	"novel-hub/core/logger"
	"novel-hub/feature/novel/provider"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rank listings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the rank routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/rank/:provider", h.HandleListRank)
}

// HandleListRank returns one provider rank listing as work outlines.
// @Summary List Rank
// @Description Get a provider rank listing joined with locally cached metadata. Query parameters select the listing (e.g. genre, period).
// @Tags rank
// @Produce json
// @Param provider path string true "Provider (e.g. 'syosetu')"
// @Success 200 {array} models.WorkOutline "Rank Listing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rank/{provider} [get]
func (h *Handler) HandleListRank(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := provider.RankOptions(c.Queries())
	outlines, err := h.service.List(c.Context(), c.Params("provider"), opts)
	if err != nil {
		l.Error("Rank listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(outlines)
}

package favorite

import (
	"novel-hub/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for favorites.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the favorite routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/favorites")
	group.Post("/:user/:provider/:id", h.HandleAdd)
	group.Get("/:user", h.HandleList)
}

// HandleAdd creates a favorite relationship.
// @Summary Add Favorite
// @Description Link a user to a work.
// @Tags favorites
// @Produce json
// @Param user path string true "User ID"
// @Param provider path string true "Provider"
// @Param id path string true "Provider Work ID"
// @Success 201 "Created"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favorites/{user}/{provider}/{id} [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	err := h.store.Add(c.Context(), c.Params("user"), c.Params("provider"), c.Params("id"))
	if err != nil {
		l.Error("Favorite add failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleList returns a user's favorites, most recently stamped first.
// @Summary List Favorites
// @Description List a user's favorite relationships with their last-seen update timestamps.
// @Tags favorites
// @Produce json
// @Param user path string true "User ID"
// @Success 200 {array} Record "Favorites"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favorites/{user} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	recs, err := h.store.ListByUser(c.Context(), c.Params("user"))
	if err != nil {
		l.Error("Favorite listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if recs == nil {
		recs = []Record{}
	}
	return c.JSON(recs)
}

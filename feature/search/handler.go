package search

import (
	"fmt"

	"novel-hub/core/index"
	"novel-hub/core/logger"
	"novel-hub/feature/novel/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/search", h.HandleSearch)
}

// searchResponse is the wire shape of one result page.
type searchResponse struct {
	Hits  []index.Hit `json:"hits"`
	Total int64       `json:"total"`
}

// HandleSearch evaluates a faceted search query.
// @Summary Search Works
// @Description Search indexed works with free text, exact tag/keyword terms ("foo$", "-foo$"), chapter-count ranges (">10", "<100"), and facet filters.
// @Tags search
// @Produce json
// @Param q query string false "Raw query"
// @Param provider query string false "Provider facet"
// @Param classification query string false "Classification facet (ongoing, completed, short)"
// @Param level query string false "Content-advisory level (all, general, adult)"
// @Param mt query bool false "Require machine translation"
// @Param page query int false "Zero-based page"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} searchResponse "Result Page"
// @Failure 400 {object} map[string]string "Invalid Facet"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filters := Filters{
		Provider: c.Query("provider"),
		Level:    Level(c.Query("level", string(LevelAll))),
		HasMT:    c.QueryBool("mt"),
	}
	if raw := c.Query("classification"); raw != "" {
		cls, err := parseClassification(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filters.Classification = &cls
	}
	switch filters.Level {
	case LevelAll, LevelGeneral, LevelAdult:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unknown level: %s", filters.Level),
		})
	}

	page := c.QueryInt("page")
	pageSize := c.QueryInt("page_size", 20)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	res, err := h.service.Search(c.Context(), c.Query("q"), filters, page, pageSize)
	if err != nil {
		l.Error("Search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if res.Hits == nil {
		res.Hits = []index.Hit{}
	}
	return c.JSON(searchResponse{Hits: res.Hits, Total: res.Total})
}

func parseClassification(raw string) (models.Classification, error) {
	switch raw {
	case "ongoing":
		return models.ClassificationOngoing, nil
	case "completed":
		return models.ClassificationCompleted, nil
	case "short":
		return models.ClassificationShort, nil
	case "unknown":
		return models.ClassificationUnknown, nil
	}
	return 0, fmt.Errorf("unknown classification: %s", raw)
}

package novel

import (
	"time"

	"novel-hub/core/logger"
	"novel-hub/feature/novel/models"
	"novel-hub/feature/novel/provider"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for work metadata.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the novel routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/novels")
	group.Get("/:provider/:id", h.HandleGetWork)
	group.Post("/:provider/:id/visit", h.HandleVisit)
	group.Put("/:provider/:id/translation", h.HandleUpdateTranslation)
	group.Put("/:provider/:id/glossary", h.HandleUpdateGlossary)
	group.Put("/:provider/:id/progress/:engine", h.HandleSetProgress)
	group.Put("/:provider/:id/library-link", h.HandleSetLibraryLink)
	group.Put("/:provider/:id/pause", h.HandleSetPause)
}

func workKey(c *fiber.Ctx) models.WorkKey {
	return models.WorkKey{Provider: c.Params("provider"), WorkID: c.Params("id")}
}

// HandleGetWork returns the work's metadata, refreshing it from the provider
// when stale.
// @Summary Get Work Metadata
// @Description Get metadata for a work, synchronizing with the provider when the cached copy is older than the freshness window.
// @Tags novels
// @Accept json
// @Produce json
// @Param provider path string true "Provider (e.g. 'syosetu')"
// @Param id path string true "Provider Work ID"
// @Param freshness query int false "Freshness window override in minutes"
// @Success 200 {object} models.WorkMetadata "Work Metadata"
// @Failure 404 {object} map[string]string "Work Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /novels/{provider}/{id} [get]
func (h *Handler) HandleGetWork(c *fiber.Ctx) error {
	key := workKey(c)
	l := logger.WithRayID(h.service.logger, c)

	freshness := time.Duration(c.QueryInt("freshness")) * time.Minute
	work, err := h.service.GetAndSync(c.Context(), key, freshness)
	if err != nil {
		if provider.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "work not found on provider",
			})
		}
		l.Error("Metadata synchronization failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(work)
}

// HandleVisit increments the work's visit counter.
// @Summary Record Visit
// @Description Increment the visit counter for a work.
// @Tags novels
// @Produce json
// @Param provider path string true "Provider"
// @Param id path string true "Provider Work ID"
// @Success 204 "Recorded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /novels/{provider}/{id}/visit [post]
func (h *Handler) HandleVisit(c *fiber.Ctx) error {
	key := workKey(c)
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.IncrementVisitCount(c.Context(), key); err != nil {
		l.Error("Visit increment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type translationRequest struct {
	TitleZh    *string           `json:"title_zh"`
	SynopsisZh *string           `json:"synopsis_zh"`
	TocZh      map[string]string `json:"toc_zh"`
}

// HandleUpdateTranslation applies human-edited translations.
// @Summary Update Human Translation
// @Description Apply human-edited title, synopsis, and chapter title translations.
// @Tags novels
// @Accept json
// @Produce json
// @Param provider path string true "Provider"
// @Param id path string true "Provider Work ID"
// @Param request body translationRequest true "Translation Fields"
// @Success 200 {object} models.WorkMetadata "Updated Metadata"
// @Failure 404 {object} map[string]string "Work Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /novels/{provider}/{id}/translation [put]
func (h *Handler) HandleUpdateTranslation(c *fiber.Ctx) error {
	key := workKey(c)
	l := logger.WithRayID(h.service.logger, c)

	var req translationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	work, err := h.service.UpdateHumanTranslation(c.Context(), key, req.TitleZh, req.SynopsisZh, req.TocZh)
	if err != nil {
		l.Error("Translation update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if work == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
	}
	return c.JSON(work)
}

type glossaryRequest struct {
	Glossary map[string]string `json:"glossary"`
}

// HandleUpdateGlossary replaces the work's glossary.
// @Summary Update Glossary
// @Description Replace the translation glossary and reissue its revision.
// @Tags novels
// @Accept json
// @Produce json
// @Param provider path string true "Provider"
// @Param id path string true "Provider Work ID"
// @Param request body glossaryRequest true "Glossary"
// @Success 200 {object} models.WorkMetadata "Updated Metadata"
// @Failure 404 {object} map[string]string "Work Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /novels/{provider}/{id}/glossary [put]
func (h *Handler) HandleUpdateGlossary(c *fiber.Ctx) error {
	key := workKey(c)
	l := logger.WithRayID(h.service.logger, c)

	var req glossaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	work, err := h.service.UpdateGlossary(c.Context(), key, req.Glossary)
	if err != nil {
		l.Error("Glossary update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if work == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
	}
	return c.JSON(work)
}

type progressRequest struct {
	Translated map[string]string `json:"translated"`
}

// HandleSetProgress records a translation engine's per-chapter progress.
// @Summary Set Translation Progress
// @Description Record how many chapters a translation engine has produced.
// @Tags novels
// @Accept json
// @Produce json
// @Param provider path string true "Provider"
// @Param id path string true "Provider Work ID"
// @Param engine path string true "Translation Engine"
// @Param request body progressRequest true "Chapter ID to Translated Title"
// @Success 200 {object} models.WorkMetadata "Updated Metadata"
// @Failure 404 {object} map[string]string "Work Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /novels/{provider}/{id}/progress/{engine} [put]
func (h *Handler) HandleSetProgress(c *fiber.Ctx) error {
	key := workKey(c)
	l := logger.WithRayID(h.service.logger, c)

	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	work, err := h.service.SetTranslationProgress(c.Context(), key, c.Params("engine"), req.Translated)
	if err != nil {
		l.Error("Progress update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if work == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
	}
	return c.JSON(work)
}

type libraryLinkRequest struct {
	Link string `json:"link"`
}

// HandleSetLibraryLink records the work's external archive location.
// @Summary Set External Library Link
// @Description Record where the work lives in an external archive.
// @Tags novels
// @Accept json
// @Produce json
// @Param provider path string true "Provider"
// @Param id path string true "Provider Work ID"
// @Param request body libraryLinkRequest true "Link"
// @Success 200 {object} models.WorkMetadata "Updated Metadata"
// @Failure 404 {object} map[string]string "Work Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /novels/{provider}/{id}/library-link [put]
func (h *Handler) HandleSetLibraryLink(c *fiber.Ctx) error {
	key := workKey(c)
	l := logger.WithRayID(h.service.logger, c)

	var req libraryLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	work, err := h.service.SetExternalLibraryLink(c.Context(), key, req.Link)
	if err != nil {
		l.Error("Library link update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if work == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
	}
	return c.JSON(work)
}

type pauseRequest struct {
	Paused bool `json:"paused"`
}

// HandleSetPause toggles the per-work refetch pause.
// @Summary Set Pause Flag
// @Description Enable or disable remote refetching for a work.
// @Tags novels
// @Accept json
// @Produce json
// @Param provider path string true "Provider"
// @Param id path string true "Provider Work ID"
// @Param request body pauseRequest true "Pause Flag"
// @Success 200 {object} models.WorkMetadata "Updated Metadata"
// @Failure 404 {object} map[string]string "Work Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /novels/{provider}/{id}/pause [put]
func (h *Handler) HandleSetPause(c *fiber.Ctx) error {
	key := workKey(c)
	l := logger.WithRayID(h.service.logger, c)

	var req pauseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	work, err := h.service.SetPauseUpdate(c.Context(), key, req.Paused)
	if err != nil {
		l.Error("Pause update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if work == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "work not found"})
	}
	return c.JSON(work)
}

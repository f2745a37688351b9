package http

import (
	"clubsite/internal/content/usecase"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

// PublicHTTPHandler serves the read-only site feeds and the community event
// RSVP endpoint. Each feed is the full collection in its display projection;
// filtering and slicing happen client-side.
type PublicHTTPHandler struct {
	usecase usecase.ResourceUsecaseInterface
	log     logger.Logger
}

// NewPublicHTTPHandler creates a new public content handler.
func NewPublicHTTPHandler(uc usecase.ResourceUsecaseInterface, log logger.Logger) *PublicHTTPHandler {
	return &PublicHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("public_http"),
	}
}

// RegisterRoutes registers the public content routes.
func (h *PublicHTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/team", h.Team)
	router.Get("/news-flash", h.NewsFlash)
	router.Get("/events", h.Events)
	router.Get("/macro-indicators", h.MacroIndicators)
	router.Get("/gallery", h.Gallery)
	router.Get("/research-reports", h.ResearchReports)
	router.Get("/research-archive", h.ResearchArchive)
	router.Get("/site-stats", h.SiteStats)
	router.Get("/sentiment", h.Sentiment)
	router.Get("/partners", h.Partners)
	router.Get("/community-events", h.CommunityEvents)
	router.Post("/community-events/:id/rsvp", h.SubmitRSVP)
}

func (h *PublicHTTPHandler) Team(c *fiber.Ctx) error {
	items, err := h.usecase.TeamMembers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) NewsFlash(c *fiber.Ctx) error {
	items, err := h.usecase.NewsFlash(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) Events(c *fiber.Ctx) error {
	items, err := h.usecase.Events(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) MacroIndicators(c *fiber.Ctx) error {
	items, err := h.usecase.MacroIndicators(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) Gallery(c *fiber.Ctx) error {
	items, err := h.usecase.Gallery(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) ResearchReports(c *fiber.Ctx) error {
	items, err := h.usecase.ResearchReports(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) ResearchArchive(c *fiber.Ctx) error {
	items, err := h.usecase.ResearchArchive(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) SiteStats(c *fiber.Ctx) error {
	items, err := h.usecase.SiteStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) Sentiment(c *fiber.Ctx) error {
	items, err := h.usecase.Sentiment(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PublicHTTPHandler) Partners(c *fiber.Ctx) error {
	items, err := h.usecase.Partners(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// CommunityEvents returns only active events, ordered by event date.
func (h *PublicHTTPHandler) CommunityEvents(c *fiber.Ctx) error {
	items, err := h.usecase.CommunityEvents(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

type rsvpRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubmitRSVP registers one attendee for a community event. Repeat submissions
// with the same email for the same event come back as a 409 with the
// ALREADY_REGISTERED code so the caller can tell "done before" from "failed".
func (h *PublicHTTPHandler) SubmitRSVP(c *fiber.Ctx) error {
	// Params are views over the request buffer; the row outlives the request.
	eventID := fiberutils.CopyString(c.Params("id"))

	var req rsvpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and email are required",
		})
	}

	result, err := h.usecase.SubmitRSVP(c.Context(), eventID, req.Name, req.Email)
	if err != nil {
		return writeError(c, err)
	}
	if !result.Success {
		status := fiber.StatusInternalServerError
		if result.Error == apperrors.CodeAlreadyRegistered {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   result.Error,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

package http

import (
	"errors"
	"fmt"

	"clubsite/internal/news/domain/repository"
	"clubsite/internal/news/usecase"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// proxyCacheControl instructs the CDN in front of the proxy to serve the
// upstream payload for 12 hours.
const proxyCacheControl = "s-maxage=43200, stale-while-revalidate=3600"

// NewsHTTPHandler serves the cached news feed and the credential-shielding
// proxy. The upstream token lives only in this process; the proxy injects it
// server-side so browsers never carry it.
type NewsHTTPHandler struct {
	usecase usecase.NewsUsecaseInterface
	raw     repository.RawFetcher
	log     logger.Logger
}

// NewNewsHTTPHandler creates a new news HTTP handler.
func NewNewsHTTPHandler(uc usecase.NewsUsecaseInterface, raw repository.RawFetcher, log logger.Logger) *NewsHTTPHandler {
	return &NewsHTTPHandler{
		usecase: uc,
		raw:     raw,
		log:     log.WithComponent("news_http"),
	}
}

// RegisterRoutes registers the news routes.
func (h *NewsHTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/news", h.GetNews)
	router.Get("/news-proxy", h.ProxyNews)
}

// GetNews returns the normalized news batch, served from cache when fresh.
func (h *NewsHTTPHandler) GetNews(c *fiber.Ctx) error {
	params := repository.FetchParams{
		Kind:       c.Query("kind"),
		Filter:     c.Query("filter"),
		Currencies: c.Query("currencies"),
		Regions:    c.Query("regions"),
	}

	items, err := h.usecase.GetNews(c.Context(), params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			body := fiber.Map{"error": appErr.Message}
			if appErr.Code != "" {
				body["code"] = appErr.Code
			}
			return c.Status(appErr.HTTPCode).JSON(body)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

// ProxyNews forwards the query to the upstream provider with the server-side
// token injected and relays status and body verbatim. Successful responses
// carry the CDN cache header; error passthrough stays uncached.
func (h *NewsHTTPHandler) ProxyNews(c *fiber.Ctx) error {
	if h.raw == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "news proxy is not configured",
		})
	}

	params := repository.FetchParams{
		Kind:       c.Query("kind"),
		Filter:     c.Query("filter"),
		Currencies: c.Query("currencies"),
		Regions:    c.Query("regions"),
	}

	status, body, err := h.raw.RawPosts(c.Context(), params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && apperrors.IsConfiguration(err) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "CRYPTOPANIC_TOKEN not configured",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if status < 200 || status >= 300 {
		return c.Status(status).JSON(fiber.Map{
			"error": fmt.Sprintf("CryptoPanic API returned %d", status),
		})
	}

	c.Set(fiber.HeaderCacheControl, proxyCacheControl)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}

package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morningstar-ai/preview-engine/internal/config"
	"github.com/morningstar-ai/preview-engine/internal/handler"
	middlewarepkg "github.com/morningstar-ai/preview-engine/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Capture   *handler.CaptureHandler
	Generate  *handler.GenerateHandler
	Preview   *handler.PreviewHandler
	Prospects *handler.ProspectsHandler
	Dashboard *handler.DashboardHandler
	Webhook   *handler.WebhookHandler
}

// Register wires all HTTP routes. Preview serving, tracking and webhooks are
// public; everything else sits behind the operator API key.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	// Public: hit from the prospect's browser and by providers.
	e.GET("/p/:id", handlers.Preview.Serve)
	e.POST("/api/track", handlers.Preview.Track)
	e.POST("/api/webhooks", handlers.Webhook.Receive)

	api := e.Group("/api", middlewarepkg.APIKey(cfg.InternalAPIKey))
	api.POST("/capture", handlers.Capture.Ingest, middlewarepkg.CaptureRateLimiter(cfg.RateLimitCapture))
	api.POST("/scan", handlers.Capture.Scan)
	api.POST("/generate", handlers.Generate.Generate)
	api.POST("/approve", handlers.Preview.Review)
	api.GET("/prospects", handlers.Prospects.List)
	api.GET("/prospects/:id", handlers.Prospects.Get)
	api.PATCH("/prospects", handlers.Prospects.Update)
	api.GET("/dashboard", handlers.Dashboard.Snapshot)
}

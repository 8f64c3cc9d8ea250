package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/morningstar-ai/preview-engine/internal/config"
	"github.com/morningstar-ai/preview-engine/internal/database"
	"github.com/morningstar-ai/preview-engine/internal/fetch"
	"github.com/morningstar-ai/preview-engine/internal/handler"
	"github.com/morningstar-ai/preview-engine/internal/llm"
	middlewarepkg "github.com/morningstar-ai/preview-engine/internal/middleware"
	"github.com/morningstar-ai/preview-engine/internal/preview"
	"github.com/morningstar-ai/preview-engine/internal/repository"
	"github.com/morningstar-ai/preview-engine/internal/router"
	"github.com/morningstar-ai/preview-engine/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	provider, err := llm.NewProvider(cfg.LLMProvider, cfg.LLMModel)
	if err != nil {
		log.Fatalf("failed to create llm provider: %v", err)
	}
	analyst := llm.NewAnalyst(provider)

	prospectsRepo := repository.NewPGXProspectsRepository(pool)
	capturesRepo := repository.NewPGXCapturesRepository(pool)
	previewsRepo := repository.NewPGXPreviewsRepository(pool)
	templatesRepo := repository.NewPGXTemplatesRepository(pool)
	notificationsRepo := repository.NewPGXNotificationsRepository(pool)
	dealsRepo := repository.NewPGXDealsRepository(pool)

	generator := preview.NewGenerator(preview.NewStore(cfg.TemplatesDir))
	fetcher := fetch.NewClient()

	captureService := service.NewCaptureService(prospectsRepo, capturesRepo, notificationsRepo, fetcher)
	generateService := service.NewGenerateService(prospectsRepo, capturesRepo, previewsRepo, templatesRepo, notificationsRepo, analyst, generator, cfg.PreviewBaseURL, cfg.PreviewExpiry)
	previewService := service.NewPreviewService(previewsRepo, prospectsRepo, notificationsRepo)
	prospectsService := service.NewProspectsService(prospectsRepo, capturesRepo, previewsRepo)
	dashboardService := service.NewDashboardService(prospectsRepo, previewsRepo, notificationsRepo, dealsRepo)
	webhookService := service.NewWebhookService(prospectsRepo, dealsRepo, notificationsRepo)

	handlers := router.Handlers{
		Capture:   handler.NewCaptureHandler(captureService),
		Generate:  handler.NewGenerateHandler(generateService),
		Preview:   handler.NewPreviewHandler(previewService),
		Prospects: handler.NewProspectsHandler(prospectsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Webhook:   handler.NewWebhookHandler(webhookService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

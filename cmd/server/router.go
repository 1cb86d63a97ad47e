package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/slidegen-api/internal/api"
	apiMiddleware "github.com/phrazzld/slidegen-api/internal/api/middleware"
	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/service"
)

// setupRouter creates the application router with all routes and middleware.
func setupRouter(
	presentationService service.PresentationService,
	cfg *config.Config,
	appLogger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	presentationHandler := api.NewPresentationHandler(presentationService, cfg.Slides)
	healthHandler := api.NewHealthHandler()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/presentations", presentationHandler.CreatePresentation)
		r.Get("/presentations/{id}/download", presentationHandler.DownloadPresentation)
		r.Delete("/presentations/{id}", presentationHandler.DeletePresentation)
	})

	r.Get("/health", healthHandler.Health)

	appLogger.Debug("Router configured")
	return r
}

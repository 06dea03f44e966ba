package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/colorpass/colorpass-go/internal/config"
	"github.com/colorpass/colorpass-go/internal/middleware"
	"github.com/colorpass/colorpass-go/internal/service"
)

// NewRouter wires the pages and the JSON API. ctx bounds background work
// started by middleware.
func NewRouter(ctx context.Context, cfg config.Config, gen *service.GeneratorService, bg *service.BackgroundService) http.Handler {
	genHandler := NewGeneratorHandler(gen)
	bgHandler := NewBackgroundHandler(bg)
	pages := NewPageHandler(gen, bg)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", pages.HandleIndex)
	r.Get("/switcher", pages.HandleSwitcher)
	r.Post("/switcher/{color}", pages.HandleSwitcherSelect)
	r.Get("/generator", pages.HandleGenerator)
	r.Post("/generator", pages.HandleGeneratorUpdate)
	r.Post("/generator/copy", pages.HandleGeneratorCopy)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimit))

		r.Post("/generate", genHandler.HandleGenerate)

		r.Get("/password", genHandler.HandleGetPassword)
		r.Put("/password/config", genHandler.HandleConfigure)
		r.Post("/password/regenerate", genHandler.HandleRegenerate)
		r.Post("/password/copy", genHandler.HandleCopy)

		r.Get("/colors", bgHandler.HandleListColors)
		r.Get("/background", bgHandler.HandleGetBackground)
		r.Put("/background", bgHandler.HandleSelectBackground)
	})

	return r
}

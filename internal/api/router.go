package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/mydiary/journal-insights/docs"
	"github.com/mydiary/journal-insights/internal/api/handler"
	"github.com/mydiary/journal-insights/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler      *handler.UserHandler
	entryHandler     *handler.EntryHandler
	analyticsHandler *handler.AnalyticsHandler
}

func NewRouter(userHandler *handler.UserHandler, entryHandler *handler.EntryHandler, analyticsHandler *handler.AnalyticsHandler) *Router {
	return &Router{
		userHandler:      userHandler,
		entryHandler:     entryHandler,
		analyticsHandler: analyticsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Patch("/{userId}/goals", rt.userHandler.UpdateGoals)

			// Journal entries (nested under users)
			r.Route("/{userId}/entries", func(r chi.Router) {
				r.Post("/", rt.entryHandler.Create)
				r.Get("/", rt.entryHandler.List)
				r.Get("/{entryId}", rt.entryHandler.GetByID)
				r.Patch("/{entryId}", rt.entryHandler.Update)
				r.Delete("/{entryId}", rt.entryHandler.Delete)
			})

			// Derived analytics (nested under users)
			r.Route("/{userId}/analytics", func(r chi.Router) {
				r.Get("/streaks", rt.analyticsHandler.Streaks)
				r.Get("/productivity", rt.analyticsHandler.Productivity)
				r.Get("/mood-trends", rt.analyticsHandler.MoodTrends)
				r.Get("/keywords", rt.analyticsHandler.Keywords)
				r.Get("/journey", rt.analyticsHandler.Journey)
				r.Get("/dashboard", rt.analyticsHandler.Dashboard)
			})
		})
	})

	return r
}

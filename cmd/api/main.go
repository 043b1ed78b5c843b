// Journal Insights API
//
// REST API for journaling analytics.
//
//	@title			Journal Insights API
//	@version		1.0
//	@description	Journal entries with streak tracking, productivity scoring, mood trends, keyword clouds, and emotional journey mapping.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			entries
//	@tag.description	Journal entry endpoints
//
//	@tag.name			analytics
//	@tag.description	Journaling analytics endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/mydiary/journal-insights/internal/api"
	"github.com/mydiary/journal-insights/internal/api/handler"
	"github.com/mydiary/journal-insights/internal/config"
	"github.com/mydiary/journal-insights/internal/domain"
	"github.com/mydiary/journal-insights/internal/repository"
	"github.com/mydiary/journal-insights/internal/seed"
	"github.com/mydiary/journal-insights/internal/service"
	"github.com/mydiary/journal-insights/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Entry{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize tracing (no-op when OTLP_ENDPOINT is unset)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "journal-insights-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	entryService := service.NewEntryService(entryRepo, userRepo)
	analyticsService := service.NewAnalyticsService(entryRepo, userRepo)
	dashboardService := service.NewDashboardService(entryRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	entryHandler := handler.NewEntryHandler(entryService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, dashboardService)

	// Setup router
	router := api.NewRouter(userHandler, entryHandler, analyticsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

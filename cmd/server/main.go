package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/planfolio/planfolio-backend/internal/api"
	"github.com/planfolio/planfolio-backend/internal/config"
	"github.com/planfolio/planfolio-backend/internal/database"
	"github.com/planfolio/planfolio-backend/internal/repository"
	"github.com/planfolio/planfolio-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	planRepo := repository.NewPlanRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	planService := service.NewPlanService(planRepo)
	analysisService := service.NewAnalysisService()
	refreshService := service.NewRefreshService(planService)

	// Nightly aggregate refresh. Stored insurance totals depend on the
	// calendar year, so they are recomputed shortly after midnight.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Scheduler.RefreshSpec, func() {
		if err := refreshService.RecalculateAll(context.Background()); err != nil {
			log.Printf("Scheduled recalculation failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to register refresh schedule %q: %v", cfg.Scheduler.RefreshSpec, err)
	}
	scheduler.Start()

	// Create router
	router := api.NewRouter(systemService, planService, analysisService, refreshService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop the scheduler and wait for any running refresh to finish
	<-scheduler.Stop().Done()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

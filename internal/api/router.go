package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/planfolio/planfolio-backend/internal/api/handlers"
	custommiddleware "github.com/planfolio/planfolio-backend/internal/api/middleware"
	"github.com/planfolio/planfolio-backend/internal/config"
	"github.com/planfolio/planfolio-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	planService *service.PlanService,
	analysisService *service.AnalysisService,
	refreshService *service.RefreshService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService, refreshService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Post("/recalculate", systemHandler.Recalculate)
		})

		r.Route("/plan", func(r chi.Router) {
			planHandler := handlers.NewPlanHandler(planService)
			scheduleHandler := handlers.NewScheduleHandler(planService)

			r.Get("/", planHandler.Plans)
			r.Post("/", planHandler.CreatePlan)
			r.Get("/summary", planHandler.PortfolioSummary)

			r.Route("/{planId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidatePlanIDMiddleware)

				r.Get("/", planHandler.GetPlan)
				r.Delete("/", planHandler.DeletePlan)
				r.Get("/log", planHandler.CalculationLog)

				r.Post("/stop", scheduleHandler.Stop)
				r.Post("/pause", scheduleHandler.Pause)
				r.Post("/resume", scheduleHandler.Resume)

				r.Route("/year/{year}", func(r chi.Router) {
					r.Put("/", scheduleHandler.ApplyYear)
					r.Delete("/", scheduleHandler.ZeroYear)
					r.Put("/month/{month}", scheduleHandler.SetMonth)
					r.Put("/override", scheduleHandler.SetOverride)
					r.Delete("/override", scheduleHandler.ClearOverride)
				})
			})
		})

		r.Route("/analysis", func(r chi.Router) {
			analysisHandler := handlers.NewAnalysisHandler(analysisService)
			r.Post("/", analysisHandler.Analyze)
		})
	})

	return r
}

// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planfolio/planfolio-backend/internal/api/response"
	"github.com/planfolio/planfolio-backend/internal/validation"
)

// ValidatePlanIDMiddleware validates that the planId URL parameter is present
// and is a valid UUID. Returns 400 Bad Request if the plan ID is missing or
// invalid. Apply to routes that take a plan ID in the URL path.
//
// Example usage in router:
//
//	r.Route("/{planId}", func(r chi.Router) {
//	    r.Use(middleware.ValidatePlanIDMiddleware)
//	    r.Get("/", handler.GetPlan)
//	    r.Delete("/", handler.DeletePlan)
//	})
func ValidatePlanIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		planID := chi.URLParam(r, "planId")

		if planID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid plan ID is required", "")
			return
		}

		if err := validation.ValidateUUID(planID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid plan ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

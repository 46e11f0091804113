package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps a service-layer error onto an HTTP status and
// sends the standard error payload. Unknown errors become 500s.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError

	var validationErr *validation.Error
	switch {
	case errors.Is(err, apperrors.ErrPlanNotFound),
		errors.Is(err, apperrors.ErrYearNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidMonthIndex),
		errors.Is(err, apperrors.ErrInvalidOverrideValue),
		errors.Is(err, apperrors.ErrOverrideNotSupported),
		errors.Is(err, apperrors.ErrInvalidStatusTransition),
		errors.Is(err, apperrors.ErrInvalidAnalysisInput),
		errors.Is(err, apperrors.ErrEmptyAssetList),
		errors.Is(err, apperrors.ErrUnknownPlanKind),
		errors.As(err, &validationErr):
		status = http.StatusBadRequest
	}

	errorResponse := map[string]string{
		"error":  message,
		"detail": err.Error(),
	}
	respondJSON(w, status, errorResponse)
}

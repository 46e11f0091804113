package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/planfolio/planfolio-backend/internal/api/request"
	"github.com/planfolio/planfolio-backend/internal/api/response"
	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/service"
)

// ScheduleHandler handles contribution schedule and override HTTP requests
type ScheduleHandler struct {
	planService *service.PlanService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(planService *service.PlanService) *ScheduleHandler {
	return &ScheduleHandler{
		planService: planService,
	}
}

func urlParamInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (float64, bool) {
	var req request.SetAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return 0, false
	}
	return req.Amount, true
}

func (h *ScheduleHandler) respondPlan(w http.ResponseWriter, p model.Plan, err error, message string) {
	if err != nil {
		respondServiceError(w, message, err)
		return
	}
	respondJSON(w, http.StatusOK, toPlanResponse(p))
}

// SetMonth replaces one month's contribution and returns the recalculated plan.
//
// Endpoint: PUT /api/plan/{planId}/year/{year}/month/{month}
// The month parameter is a zero-based index (0 = January).
func (h *ScheduleHandler) SetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := urlParamInt(r, "year")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}
	month, err := urlParamInt(r, "month")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month index", err.Error())
		return
	}

	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	p, err := h.planService.SetMonth(chi.URLParam(r, "planId"), year, month, amount)
	h.respondPlan(w, p, err, "Failed to set month contribution")
}

// ApplyYear replaces every month of a year with the same contribution.
//
// Endpoint: PUT /api/plan/{planId}/year/{year}
func (h *ScheduleHandler) ApplyYear(w http.ResponseWriter, r *http.Request) {
	year, err := urlParamInt(r, "year")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	p, err := h.planService.SetAllMonths(chi.URLParam(r, "planId"), year, amount)
	h.respondPlan(w, p, err, "Failed to apply contribution to year")
}

// ZeroYear clears every contribution of a year.
//
// Endpoint: DELETE /api/plan/{planId}/year/{year}
func (h *ScheduleHandler) ZeroYear(w http.ResponseWriter, r *http.Request) {
	year, err := urlParamInt(r, "year")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	p, err := h.planService.ZeroAllMonths(chi.URLParam(r, "planId"), year)
	h.respondPlan(w, p, err, "Failed to zero year contributions")
}

// SetOverride records an observed actual year-end value for a year. The
// override supersedes the calculated value in every recalculation until
// cleared.
//
// Endpoint: PUT /api/plan/{planId}/year/{year}/override
func (h *ScheduleHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	year, err := urlParamInt(r, "year")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	var req request.SetOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	p, err := h.planService.SetOverride(chi.URLParam(r, "planId"), year, req.ActualValue)
	h.respondPlan(w, p, err, "Failed to set override")
}

// ClearOverride removes a year's manual override and restores calculated values.
//
// Endpoint: DELETE /api/plan/{planId}/year/{year}/override
func (h *ScheduleHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	year, err := urlParamInt(r, "year")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	p, err := h.planService.ClearOverride(chi.URLParam(r, "planId"), year)
	h.respondPlan(w, p, err, "Failed to clear override")
}

// Stop marks the plan stopped and zeroes all future-year contributions.
//
// Endpoint: POST /api/plan/{planId}/stop
func (h *ScheduleHandler) Stop(w http.ResponseWriter, r *http.Request) {
	p, err := h.planService.Stop(chi.URLParam(r, "planId"))
	h.respondPlan(w, p, err, "Failed to stop plan")
}

// Pause marks an active plan paused. Aggregates are unchanged.
//
// Endpoint: POST /api/plan/{planId}/pause
func (h *ScheduleHandler) Pause(w http.ResponseWriter, r *http.Request) {
	p, err := h.planService.Pause(chi.URLParam(r, "planId"))
	h.respondPlan(w, p, err, "Failed to pause plan")
}

// Resume marks a paused plan active again.
//
// Endpoint: POST /api/plan/{planId}/resume
func (h *ScheduleHandler) Resume(w http.ResponseWriter, r *http.Request) {
	p, err := h.planService.Resume(chi.URLParam(r, "planId"))
	h.respondPlan(w, p, err, "Failed to resume plan")
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/planfolio/planfolio-backend/internal/api/request"
	"github.com/planfolio/planfolio-backend/internal/api/response"
	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/service"
	"github.com/planfolio/planfolio-backend/internal/validation"
)

// PlanHandler handles plan registry HTTP requests
type PlanHandler struct {
	planService *service.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// PlanResponse represents a plan in API responses. Year records carry the
// monthly schedule plus the derived value snapshot for that year.
type PlanResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
	Status    string `json:"status"`

	AnnualReturn     float64 `json:"annualReturn,omitempty"`
	PremiumAmount    float64 `json:"premiumAmount,omitempty"`
	PremiumFrequency string  `json:"premiumFrequency,omitempty"`
	MaturityValue    float64 `json:"maturityValue,omitempty"`

	Years map[int]model.YearRecord `json:"years"`

	TotalInvested float64 `json:"totalInvested"`
	CurrentValue  float64 `json:"currentValue"`
	TotalReturns  float64 `json:"totalReturns"`

	CreatedAt time.Time `json:"createdAt"`
}

func toPlanResponse(p model.Plan) PlanResponse {
	return PlanResponse{
		ID:               p.ID,
		Kind:             string(p.Kind),
		Name:             p.Name,
		Currency:         string(p.Currency),
		StartYear:        p.StartYear,
		EndYear:          p.EndYear,
		Status:           string(p.Status),
		AnnualReturn:     p.AnnualReturn,
		PremiumAmount:    p.PremiumAmount,
		PremiumFrequency: string(p.PremiumFrequency),
		MaturityValue:    p.MaturityValue,
		Years:            p.Years,
		TotalInvested:    p.TotalInvested,
		CurrentValue:     p.CurrentValue,
		TotalReturns:     p.TotalReturns,
		CreatedAt:        p.CreatedAt,
	}
}

// Plans lists every stored plan
func (h *PlanHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.GetAllPlans()
	if err != nil {
		respondServiceError(w, "Failed to retrieve plans", err)
		return
	}

	resp := make([]PlanResponse, len(plans))
	for i, p := range plans {
		resp[i] = toPlanResponse(p)
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreatePlan creates a new plan from the request body.
//
// Endpoint: POST /api/plan
// Response: 201 Created with the fully initialized, recalculated plan
// Error: 400 Bad Request on validation failure
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePlan(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	input := service.CreatePlanInput{
		Kind:        model.PlanKind(req.Kind),
		Name:        req.Name,
		Currency:    model.Currency(req.Currency),
		StartYear:   req.StartYear,
		PeriodYears: req.Period,
	}
	if req.AnnualReturn != nil {
		input.AnnualReturn = *req.AnnualReturn
	}
	if req.InitialAmount != nil {
		input.InitialAmount = *req.InitialAmount
	}
	if req.PremiumAmount != nil {
		input.PremiumAmount = *req.PremiumAmount
	}
	if req.PremiumFrequency != nil {
		input.PremiumFrequency = model.PremiumFrequency(*req.PremiumFrequency)
	}
	if req.MaturityValue != nil {
		input.MaturityValue = *req.MaturityValue
	}

	p, err := h.planService.CreatePlan(input)
	if err != nil {
		respondServiceError(w, "Failed to create plan", err)
		return
	}

	respondJSON(w, http.StatusCreated, toPlanResponse(p))
}

// GetPlan retrieves a single plan by ID
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	p, err := h.planService.GetPlan(planID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve plan", err)
		return
	}

	respondJSON(w, http.StatusOK, toPlanResponse(p))
}

// DeletePlan removes a plan permanently
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	if err := h.planService.DeletePlan(planID); err != nil {
		respondServiceError(w, "Failed to delete plan", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// CalculationLogResponse represents a plan's recalculation trace
type CalculationLogResponse struct {
	PlanID string   `json:"planId"`
	Log    []string `json:"log"`
}

// CalculationLog returns the human-readable trace of a fresh recalculation.
// The trace is regenerated on every call and never persisted.
//
// Endpoint: GET /api/plan/{planId}/log
func (h *PlanHandler) CalculationLog(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	logLines, err := h.planService.GetCalculationLog(planID)
	if err != nil {
		respondServiceError(w, "Failed to generate calculation log", err)
		return
	}

	respondJSON(w, http.StatusOK, CalculationLogResponse{
		PlanID: planID,
		Log:    logLines,
	})
}

// PortfolioSummary returns aggregates summed across all stored plans
func (h *PlanHandler) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.planService.GetPortfolioSummary()
	if err != nil {
		respondServiceError(w, "Failed to get portfolio summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

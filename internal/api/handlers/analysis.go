package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/planfolio/planfolio-backend/internal/api/request"
	"github.com/planfolio/planfolio-backend/internal/api/response"
	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/service"
	"github.com/planfolio/planfolio-backend/internal/validation"
)

// AnalysisHandler handles multi-asset analysis HTTP requests
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analyze runs the analysis engine over the submitted asset batch and returns
// per-asset metrics plus the portfolio-level aggregation. Nothing is persisted.
//
// Endpoint: POST /api/analysis
// Response: 200 OK with individual and cumulative results
// Error: 400 Bad Request on validation failure or unusable asset input
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAnalyzeRequest(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	assets := make([]model.AssetInput, len(req.Assets))
	for i, a := range req.Assets {
		assets[i] = model.AssetInput{
			Name:             a.Name,
			AssetType:        model.AssetType(a.AssetType),
			RiskProfile:      model.RiskProfile(a.RiskProfile),
			Currency:         model.Currency(a.Currency),
			InvestmentAmount: a.InvestmentAmount,
			CurrentValue:     a.CurrentValue,
			Years:            a.Years,
			Months:           a.Months,
		}
	}

	result, err := h.analysisService.AnalyzeAssets(assets)
	if err != nil {
		respondServiceError(w, "Failed to analyze assets", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

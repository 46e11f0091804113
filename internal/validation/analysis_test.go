package validation

import (
	"testing"

	"github.com/planfolio/planfolio-backend/internal/api/request"
)

func TestValidateAnalyzeRequest(t *testing.T) {
	validAsset := request.AnalysisAsset{
		Name:             "Index Fund",
		AssetType:        "stocks",
		RiskProfile:      "moderate",
		Currency:         "USD",
		InvestmentAmount: 10000,
		CurrentValue:     12000,
		Years:            2,
		Months:           6,
	}

	t.Run("accepts valid batch", func(t *testing.T) {
		err := ValidateAnalyzeRequest(request.AnalyzeRequest{Assets: []request.AnalysisAsset{validAsset}})
		if err != nil {
			t.Errorf("Expected valid request, got %v", err)
		}
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		if err := ValidateAnalyzeRequest(request.AnalyzeRequest{}); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("flags bad asset fields", func(t *testing.T) {
		asset := validAsset
		asset.Name = ""
		asset.InvestmentAmount = 0
		asset.Months = 12

		err := ValidateAnalyzeRequest(request.AnalyzeRequest{Assets: []request.AnalysisAsset{asset}})
		if err == nil {
			t.Fatal("Expected validation error")
		}

		vErr := err.(*Error)
		for _, field := range []string{"assets[0].name", "assets[0].investmentAmount", "assets[0].months"} {
			if _, present := vErr.Fields[field]; !present {
				t.Errorf("Expected field %q flagged, got %v", field, vErr.Fields)
			}
		}
	})

	t.Run("rejects zero holding period", func(t *testing.T) {
		asset := validAsset
		asset.Years = 0
		asset.Months = 0

		err := ValidateAnalyzeRequest(request.AnalyzeRequest{Assets: []request.AnalysisAsset{asset}})
		if err == nil {
			t.Error("Expected validation error")
		}
	})
}

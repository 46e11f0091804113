package service

import (
	"fmt"

	"github.com/planfolio/planfolio-backend/internal/analysis"
	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/model"
)

// AnalysisService runs the stateless multi-asset analysis engine over a batch
// of asset records. Nothing here touches plan state.
type AnalysisService struct{}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// AnalysisResult pairs the per-asset analyses with their cumulative aggregation.
type AnalysisResult struct {
	Individual []model.AssetAnalysis    `json:"individual"`
	Cumulative model.CumulativeAnalysis `json:"cumulative"`
}

// AnalyzeAssets analyzes each asset and aggregates the results. A failing
// asset aborts the batch with an error naming it.
func (s *AnalysisService) AnalyzeAssets(assets []model.AssetInput) (AnalysisResult, error) {
	if len(assets) == 0 {
		return AnalysisResult{}, apperrors.ErrEmptyAssetList
	}

	individual := make([]model.AssetAnalysis, len(assets))
	for i, asset := range assets {
		a, err := analysis.Analyze(asset)
		if err != nil {
			return AnalysisResult{}, fmt.Errorf("asset %q: %w", asset.Name, err)
		}
		individual[i] = a
	}

	return AnalysisResult{
		Individual: individual,
		Cumulative: analysis.Aggregate(individual),
	}, nil
}

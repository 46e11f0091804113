// Package analysis implements the stateless multi-asset analysis engine:
// per-asset return/risk/benchmark metrics and investment-weighted portfolio
// aggregation. It shares no state with the projection engine.
package analysis

import (
	"fmt"
	"math"

	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/model"
)

// riskPenaltyPerLevel reduces the quality of a return by 10% per risk level
// above the lowest.
const riskPenaltyPerLevel = 0.1

// Analyze computes the derived metrics for a single asset.
//
// Inputs that would make CAGR indeterminate are rejected: the total holding
// period and the investment amount must both be positive. Every division and
// power inside is still guarded so that a zero denominator yields 0 rather
// than NaN or infinity.
func Analyze(asset model.AssetInput) (model.AssetAnalysis, error) {
	totalPeriodYears := float64(asset.Years) + float64(asset.Months)/12
	if totalPeriodYears <= 0 {
		return model.AssetAnalysis{}, fmt.Errorf("%w: holding period must be positive", apperrors.ErrInvalidAnalysisInput)
	}
	if asset.InvestmentAmount <= 0 {
		return model.AssetAnalysis{}, fmt.Errorf("%w: investment amount must be positive", apperrors.ErrInvalidAnalysisInput)
	}

	profit := asset.CurrentValue - asset.InvestmentAmount

	a := model.AssetAnalysis{
		AssetInput:       asset,
		TotalPeriodYears: totalPeriodYears,
		Profit:           profit,
	}

	if asset.InvestmentAmount > 0 {
		a.TotalReturnPercentage = profit / asset.InvestmentAmount * 100
	}
	if totalPeriodYears > 0 {
		a.ProfitPerYear = profit / totalPeriodYears
	}
	if asset.InvestmentAmount > 0 && totalPeriodYears > 0 {
		a.AnnualizedReturn = (math.Pow(asset.CurrentValue/asset.InvestmentAmount, 1/totalPeriodYears) - 1) * 100
	}

	a.RiskScore = asset.RiskProfile.Score()
	a.RiskAdjustedReturn = a.AnnualizedReturn * (1 - (a.RiskScore-1)*riskPenaltyPerLevel)
	a.BenchmarkReturn = asset.AssetType.BenchmarkReturn()
	a.PerformanceVsBenchmark = a.AnnualizedReturn - a.BenchmarkReturn

	return a, nil
}

// Aggregate combines per-asset analyses into portfolio-level figures.
// Annualized return and risk score are weighted by investment amount; the
// period average is unweighted. A zero total investment or zero average
// period yields 0 for the affected ratios instead of NaN.
func Aggregate(analyses []model.AssetAnalysis) model.CumulativeAnalysis {
	cumulative := model.CumulativeAnalysis{
		AssetCount: len(analyses),
	}
	if len(analyses) == 0 {
		return cumulative
	}
	cumulative.Currency = analyses[0].Currency

	var weightedReturn, weightedRisk, periodSum float64
	for _, a := range analyses {
		cumulative.TotalInvestment += a.InvestmentAmount
		cumulative.TotalCurrentValue += a.CurrentValue
		weightedReturn += a.AnnualizedReturn * a.InvestmentAmount
		weightedRisk += a.RiskScore * a.InvestmentAmount
		periodSum += a.TotalPeriodYears
	}

	cumulative.TotalProfit = cumulative.TotalCurrentValue - cumulative.TotalInvestment
	if cumulative.TotalInvestment > 0 {
		cumulative.TotalReturnPercentage = cumulative.TotalProfit / cumulative.TotalInvestment * 100
		cumulative.WeightedAnnualizedReturn = weightedReturn / cumulative.TotalInvestment
		cumulative.WeightedRiskScore = weightedRisk / cumulative.TotalInvestment
	}

	cumulative.AveragePeriodYears = periodSum / float64(len(analyses))
	if cumulative.AveragePeriodYears > 0 {
		cumulative.ProfitPerYear = cumulative.TotalProfit / cumulative.AveragePeriodYears
	}

	return cumulative
}

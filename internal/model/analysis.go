package model

// RiskProfile is the self-reported risk level of an analyzed asset.
type RiskProfile string

const (
	RiskLow      RiskProfile = "low"
	RiskMedium   RiskProfile = "medium"
	RiskModerate RiskProfile = "moderate"
	RiskHigh     RiskProfile = "high"
	RiskVeryHigh RiskProfile = "very-high"
)

// Score maps the risk profile to a 1-5 score. Unknown profiles score 3.
func (r RiskProfile) Score() float64 {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskModerate:
		return 3
	case RiskHigh:
		return 4
	case RiskVeryHigh:
		return 5
	default:
		return 3
	}
}

// AssetType categorizes an analyzed asset for benchmark comparison.
type AssetType string

const (
	AssetStocks      AssetType = "stocks"
	AssetMoneyMarket AssetType = "money-market"
	AssetBonds       AssetType = "bonds"
	AssetDebts       AssetType = "debts"
	AssetCommodity   AssetType = "commodity"
	AssetRealEstate  AssetType = "real-estate"
	AssetCrypto      AssetType = "crypto"
	AssetMutualFunds AssetType = "mutual-funds"
	AssetETF         AssetType = "etf"
	AssetOther       AssetType = "other"
)

// BenchmarkReturn returns the fixed reference annual return (percent) for the
// asset category. Unknown types fall back to 6%.
func (a AssetType) BenchmarkReturn() float64 {
	switch a {
	case AssetStocks:
		return 10
	case AssetMoneyMarket:
		return 3
	case AssetBonds:
		return 5
	case AssetDebts:
		return 4
	case AssetCommodity:
		return 7
	case AssetRealEstate:
		return 8
	case AssetCrypto:
		return 15
	case AssetMutualFunds:
		return 8
	case AssetETF:
		return 9
	case AssetOther:
		return 6
	default:
		return 6
	}
}

// AssetInput describes one asset to analyze. Holding period is expressed as
// whole years plus additional months.
type AssetInput struct {
	Name             string      `json:"name"`
	AssetType        AssetType   `json:"assetType"`
	RiskProfile      RiskProfile `json:"riskProfile"`
	Currency         Currency    `json:"currency"`
	InvestmentAmount float64     `json:"investmentAmount"`
	CurrentValue     float64     `json:"currentValue"`
	Years            int         `json:"years"`
	Months           int         `json:"months"`
}

// AssetAnalysis holds the derived metrics for a single asset. All metrics are
// computed on demand and never persisted.
type AssetAnalysis struct {
	AssetInput

	TotalPeriodYears       float64 `json:"totalPeriodYears"`
	Profit                 float64 `json:"profit"`
	TotalReturnPercentage  float64 `json:"totalReturnPercentage"`
	ProfitPerYear          float64 `json:"profitPerYear"`
	AnnualizedReturn       float64 `json:"annualizedReturn"`
	RiskScore              float64 `json:"riskScore"`
	RiskAdjustedReturn     float64 `json:"riskAdjustedReturn"`
	BenchmarkReturn        float64 `json:"benchmarkReturn"`
	PerformanceVsBenchmark float64 `json:"performanceVsBenchmark"`
}

// CumulativeAnalysis aggregates a batch of asset analyses into portfolio-level
// figures. Returns weighted by investment amount; period averaged unweighted.
type CumulativeAnalysis struct {
	AssetCount               int      `json:"assetCount"`
	Currency                 Currency `json:"currency"`
	TotalInvestment          float64  `json:"totalInvestment"`
	TotalCurrentValue        float64  `json:"totalCurrentValue"`
	TotalProfit              float64  `json:"totalProfit"`
	TotalReturnPercentage    float64  `json:"totalReturnPercentage"`
	WeightedAnnualizedReturn float64  `json:"weightedAnnualizedReturn"`
	WeightedRiskScore        float64  `json:"weightedRiskScore"`
	AveragePeriodYears       float64  `json:"averagePeriodYears"`
	ProfitPerYear            float64  `json:"profitPerYear"`
}

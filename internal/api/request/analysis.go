package request

// AnalysisAsset represents one asset in an analysis request.
type AnalysisAsset struct {
	Name             string  `json:"name"`
	AssetType        string  `json:"assetType"`
	RiskProfile      string  `json:"riskProfile"`
	Currency         string  `json:"currency"`
	InvestmentAmount float64 `json:"investmentAmount"`
	CurrentValue     float64 `json:"currentValue"`
	Years            int     `json:"years"`
	Months           int     `json:"months"`
}

// AnalyzeRequest represents the request body for a multi-asset analysis run.
type AnalyzeRequest struct {
	Assets []AnalysisAsset `json:"assets"`
}

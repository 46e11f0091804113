package request

// CreatePlanRequest represents the request body for creating a plan.
// Kind-specific fields are pointers so validation can distinguish missing
// from zero.
type CreatePlanRequest struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
	StartYear int    `json:"startYear"`
	Period    int    `json:"period"`

	// SIP fields.
	AnnualReturn  *float64 `json:"annualReturn,omitempty"`
	InitialAmount *float64 `json:"initialAmount,omitempty"`

	// Insurance fields.
	PremiumAmount    *float64 `json:"premiumAmount,omitempty"`
	PremiumFrequency *string  `json:"premiumFrequency,omitempty"`
	MaturityValue    *float64 `json:"maturityValue,omitempty"`
}

// SetAmountRequest carries a contribution amount for schedule edits.
type SetAmountRequest struct {
	Amount float64 `json:"amount"`
}

// SetOverrideRequest carries the observed actual year-end value.
type SetOverrideRequest struct {
	ActualValue float64 `json:"actualValue"`
}

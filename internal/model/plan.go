package model

import "time"

// PlanKind discriminates the two plan variants. The projection engine
// dispatches on this tag; adding a kind requires extending that dispatch.
type PlanKind string

const (
	// PlanKindSIP is a variable-contribution plan compounding at a fixed
	// annual return rate.
	PlanKindSIP PlanKind = "sip"

	// PlanKindInsurance is a fixed-premium plan with a guaranteed maturity value.
	PlanKindInsurance PlanKind = "insurance"
)

// PlanStatus governs whether future contributions may be edited by callers.
// The engine itself recomputes correctly regardless of status.
type PlanStatus string

const (
	PlanStatusActive  PlanStatus = "active"
	PlanStatusPaused  PlanStatus = "paused"
	PlanStatusStopped PlanStatus = "stopped"
)

// PremiumFrequency is how often a fixed premium is paid.
type PremiumFrequency string

const (
	FrequencyMonthly PremiumFrequency = "monthly"
	FrequencyAnnual  PremiumFrequency = "annual"
)

// Currency is the display currency of a plan. Two conventions are supported.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyPKR Currency = "PKR"
)

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	if c == CurrencyUSD {
		return "$"
	}
	return "Rs"
}

// MonthsPerYear is the length of every year's contribution schedule.
const MonthsPerYear = 12

// YearRecord is one calendar year's monthly contribution schedule and its
// derived value snapshot within a plan.
type YearRecord struct {
	Contributions  [MonthsPerYear]float64 `json:"contributions"`
	YearStartValue float64                `json:"yearStartValue"`
	YearEndValue   float64                `json:"yearEndValue"`
	YearlyReturn   float64                `json:"yearlyReturn"`

	// OverrideValue is a user-supplied actual year-end value. When
	// OverrideActive is set it supersedes the calculated year-end value in
	// every recalculation until cleared. Only meaningful for SIP plans.
	OverrideValue  *float64 `json:"overrideValue,omitempty"`
	OverrideActive bool     `json:"overrideActive"`
}

// TotalContributed sums the year's monthly contributions.
func (y YearRecord) TotalContributed() float64 {
	var total float64
	for _, c := range y.Contributions {
		total += c
	}
	return total
}

// Plan is a tracked financial commitment: a variable-contribution (SIP) plan
// or a fixed-premium insurance plan. Aggregates are always derived by the
// projection engine, never set directly.
type Plan struct {
	ID        string     `json:"id"`
	Kind      PlanKind   `json:"kind"`
	Name      string     `json:"name"`
	Currency  Currency   `json:"currency"`
	StartYear int        `json:"startYear"`
	EndYear   int        `json:"endYear"`
	Status    PlanStatus `json:"status"`

	// SIP only: annual nominal return rate in percent.
	AnnualReturn float64 `json:"annualReturn,omitempty"`

	// Insurance only.
	PremiumAmount    float64          `json:"premiumAmount,omitempty"`
	PremiumFrequency PremiumFrequency `json:"premiumFrequency,omitempty"`
	MaturityValue    float64          `json:"maturityValue,omitempty"`

	// Years holds one record per year in [StartYear, EndYear].
	Years map[int]YearRecord `json:"years"`

	// Derived aggregates, recomputed by every recalculation.
	TotalInvested float64 `json:"totalInvested"`
	CurrentValue  float64 `json:"currentValue"`
	TotalReturns  float64 `json:"totalReturns"`

	// CalculationLog is the human-readable trace of the last recalculation.
	// Diagnostic only; not persisted and not authoritative.
	CalculationLog []string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// Duration returns the plan length in years.
func (p Plan) Duration() int {
	return p.EndYear - p.StartYear + 1
}

// SortedYears returns the plan's schedule years in ascending order.
func (p Plan) SortedYears() []int {
	years := make([]int, 0, len(p.Years))
	for y := range p.Years {
		years = append(years, y)
	}
	for i := 1; i < len(years); i++ {
		for j := i; j > 0 && years[j-1] > years[j]; j-- {
			years[j-1], years[j] = years[j], years[j-1]
		}
	}
	return years
}

// Clone returns a deep copy of the plan. The projection engine operates on a
// clone so that recalculation returns a new value instead of mutating its input.
func (p Plan) Clone() Plan {
	out := p
	out.Years = make(map[int]YearRecord, len(p.Years))
	for year, rec := range p.Years {
		if rec.OverrideValue != nil {
			v := *rec.OverrideValue
			rec.OverrideValue = &v
		}
		out.Years[year] = rec
	}
	if p.CalculationLog != nil {
		out.CalculationLog = append([]string(nil), p.CalculationLog...)
	}
	return out
}

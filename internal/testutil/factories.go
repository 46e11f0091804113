package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/repository"
)

// PlanBuilder provides a fluent interface for creating test plans. Built
// plans are persisted as-is; no recalculation runs. Use the plan service when
// a test needs freshly derived aggregates.
//
// Example usage:
//
//	// SIP plan with defaults
//	plan := testutil.NewSIPPlan().Build(t, db)
//
//	// Customized plan
//	plan := testutil.NewSIPPlan().
//	    WithName("College Fund").
//	    WithYears(2024, 10).
//	    WithMonthlyContribution(500).
//	    Build(t, db)
type PlanBuilder struct {
	plan                model.Plan
	monthlyContribution float64
}

// NewSIPPlan creates a PlanBuilder for a variable-contribution plan with
// sensible defaults.
func NewSIPPlan() *PlanBuilder {
	return &PlanBuilder{
		plan: model.Plan{
			ID:           MakeID(),
			Kind:         model.PlanKindSIP,
			Name:         "Test SIP Plan",
			Currency:     model.CurrencyUSD,
			StartYear:    2024,
			EndYear:      2026,
			Status:       model.PlanStatusActive,
			AnnualReturn: 12,
			CreatedAt:    TestNow,
		},
		monthlyContribution: 1000,
	}
}

// NewInsurancePlan creates a PlanBuilder for a fixed-premium plan with
// sensible defaults.
func NewInsurancePlan() *PlanBuilder {
	return &PlanBuilder{
		plan: model.Plan{
			ID:               MakeID(),
			Kind:             model.PlanKindInsurance,
			Name:             "Test Insurance Plan",
			Currency:         model.CurrencyPKR,
			StartYear:        2024,
			EndYear:          2033,
			Status:           model.PlanStatusActive,
			PremiumAmount:    5000,
			PremiumFrequency: model.FrequencyMonthly,
			MaturityValue:    1000000,
			CreatedAt:        TestNow,
		},
		monthlyContribution: 5000,
	}
}

// WithID sets a custom ID.
func (b *PlanBuilder) WithID(id string) *PlanBuilder {
	b.plan.ID = id
	return b
}

// WithName sets a custom name.
func (b *PlanBuilder) WithName(name string) *PlanBuilder {
	b.plan.Name = name
	return b
}

// WithCurrency sets a custom currency.
func (b *PlanBuilder) WithCurrency(currency model.Currency) *PlanBuilder {
	b.plan.Currency = currency
	return b
}

// WithYears sets the plan span as a start year and a duration.
func (b *PlanBuilder) WithYears(startYear, period int) *PlanBuilder {
	b.plan.StartYear = startYear
	b.plan.EndYear = startYear + period - 1
	return b
}

// WithAnnualReturn sets the annual return rate in percent.
func (b *PlanBuilder) WithAnnualReturn(rate float64) *PlanBuilder {
	b.plan.AnnualReturn = rate
	return b
}

// WithMonthlyContribution sets the amount pre-filled into every month of
// every year up to and including TestNow's year.
func (b *PlanBuilder) WithMonthlyContribution(amount float64) *PlanBuilder {
	b.monthlyContribution = amount
	return b
}

// WithMaturityValue sets the guaranteed maturity value.
func (b *PlanBuilder) WithMaturityValue(value float64) *PlanBuilder {
	b.plan.MaturityValue = value
	return b
}

// WithStatus sets the plan status.
func (b *PlanBuilder) WithStatus(status model.PlanStatus) *PlanBuilder {
	b.plan.Status = status
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *PlanBuilder) WithCreatedAt(ts time.Time) *PlanBuilder {
	b.plan.CreatedAt = ts
	return b
}

// Build persists the plan in the database and returns it.
func (b *PlanBuilder) Build(t *testing.T, db *sql.DB) model.Plan {
	t.Helper()

	currentYear := TestNow.Year()
	b.plan.Years = make(map[int]model.YearRecord)
	for year := b.plan.StartYear; year <= b.plan.EndYear; year++ {
		var rec model.YearRecord
		if year <= currentYear {
			for i := range rec.Contributions {
				rec.Contributions[i] = b.monthlyContribution
			}
		}
		b.plan.Years[year] = rec
	}

	planRepo := repository.NewPlanRepository(db)
	if err := planRepo.SavePlan(b.plan); err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}

	return b.plan
}

// Convenience functions

// CreateSIPPlan creates a SIP plan with the given name and default values.
func CreateSIPPlan(t *testing.T, db *sql.DB, name string) model.Plan {
	t.Helper()
	return NewSIPPlan().WithName(name).Build(t, db)
}

// CreateInsurancePlan creates an insurance plan with the given name and
// default values.
func CreateInsurancePlan(t *testing.T, db *sql.DB, name string) model.Plan {
	t.Helper()
	return NewInsurancePlan().WithName(name).Build(t, db)
}

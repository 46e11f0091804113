package projection

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/model"
)

var testAsOf = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func newSIPPlan(startYear, period int, monthly, annualReturn float64) model.Plan {
	p := model.Plan{
		ID:           "test-sip",
		Kind:         model.PlanKindSIP,
		Name:         "Retirement Fund",
		Currency:     model.CurrencyUSD,
		StartYear:    startYear,
		EndYear:      startYear + period - 1,
		Status:       model.PlanStatusActive,
		AnnualReturn: annualReturn,
		Years:        make(map[int]model.YearRecord),
	}
	for year := p.StartYear; year <= p.EndYear; year++ {
		var rec model.YearRecord
		for i := range rec.Contributions {
			rec.Contributions[i] = monthly
		}
		p.Years[year] = rec
	}
	return p
}

func newInsurancePlan(startYear, period int, premium, maturity float64) model.Plan {
	p := model.Plan{
		ID:               "test-insurance",
		Kind:             model.PlanKindInsurance,
		Name:             "Life Cover",
		Currency:         model.CurrencyPKR,
		StartYear:        startYear,
		EndYear:          startYear + period - 1,
		Status:           model.PlanStatusActive,
		PremiumAmount:    premium,
		PremiumFrequency: model.FrequencyMonthly,
		MaturityValue:    maturity,
		Years:            make(map[int]model.YearRecord),
	}
	for year := p.StartYear; year <= p.EndYear; year++ {
		var rec model.YearRecord
		for i := range rec.Contributions {
			rec.Contributions[i] = premium
		}
		p.Years[year] = rec
	}
	return p
}

func TestRecalculate_UnknownKind(t *testing.T) {
	p := newSIPPlan(2024, 1, 1000, 12)
	p.Kind = model.PlanKind("pension")

	_, err := Recalculate(p, testAsOf)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownPlanKind)
}

func TestRecalculate_DoesNotMutateInput(t *testing.T) {
	p := newSIPPlan(2024, 2, 1000, 12)

	out, err := Recalculate(p, testAsOf)
	require.NoError(t, err)

	assert.Zero(t, p.TotalInvested)
	assert.Zero(t, p.CurrentValue)
	assert.Zero(t, p.Years[2024].YearEndValue)
	assert.NotZero(t, out.TotalInvested)
	assert.NotZero(t, out.CurrentValue)
}

func TestRecalculate_Idempotent(t *testing.T) {
	for _, p := range []model.Plan{
		newSIPPlan(2023, 3, 1500, 10),
		newInsurancePlan(2023, 5, 500, 40000),
	} {
		first, err := Recalculate(p, testAsOf)
		require.NoError(t, err)

		second, err := Recalculate(first, testAsOf)
		require.NoError(t, err)

		assert.Equal(t, first.TotalInvested, second.TotalInvested)
		assert.Equal(t, first.CurrentValue, second.CurrentValue)
		assert.Equal(t, first.TotalReturns, second.TotalReturns)
		for year := range first.Years {
			assert.Equal(t, first.Years[year].YearStartValue, second.Years[year].YearStartValue, "year %d", year)
			assert.Equal(t, first.Years[year].YearEndValue, second.Years[year].YearEndValue, "year %d", year)
			assert.Equal(t, first.Years[year].YearlyReturn, second.Years[year].YearlyReturn, "year %d", year)
		}
	}
}

func TestRecalculate_AggregateConsistency(t *testing.T) {
	plans := []model.Plan{
		newSIPPlan(2020, 7, 2500, 15),
		newSIPPlan(2024, 1, 0, 12),
		newInsurancePlan(2024, 10, 5000, 1000000),
	}

	for _, p := range plans {
		out, err := Recalculate(p, testAsOf)
		require.NoError(t, err)
		assert.InDelta(t, out.CurrentValue-out.TotalInvested, out.TotalReturns, 1e-9)
	}
}

func TestSanitizeAmount(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"positive value passes through", 1234.56, 1234.56},
		{"zero passes through", 0, 0},
		{"negative becomes zero", -50, 0},
		{"NaN becomes zero", math.NaN(), 0},
		{"positive infinity becomes zero", math.Inf(1), 0},
		{"negative infinity becomes zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeAmount(tt.input))
		})
	}
}

func TestRecalculate_SanitizesStoredContributions(t *testing.T) {
	p := newSIPPlan(2024, 1, 1000, 12)
	rec := p.Years[2024]
	rec.Contributions[3] = math.NaN()
	rec.Contributions[7] = -200
	p.Years[2024] = rec

	out, err := Recalculate(p, testAsOf)
	require.NoError(t, err)

	assert.Zero(t, out.Years[2024].Contributions[3])
	assert.Zero(t, out.Years[2024].Contributions[7])
	// 10 surviving months of 1000 each.
	assert.InDelta(t, 10000, out.TotalInvested, 1e-9)
	assert.False(t, math.IsNaN(out.CurrentValue))
}

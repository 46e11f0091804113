package projection

import (
	"fmt"
	"time"

	"github.com/planfolio/planfolio-backend/internal/model"
)

// recalculateInsurance recomputes a fixed-premium plan. There is no
// compounding: every year's start and end value is the guaranteed maturity
// value and the yearly return is zero. Premiums only count toward total
// invested for years at or before the asOf calendar year; future years are
// excluded even when the stored schedule carries non-zero premiums.
func recalculateInsurance(p *model.Plan, asOf time.Time) {
	cutoffYear := asOf.Year()

	logs := []string{
		fmt.Sprintf("=== %s Insurance Calculation Log ===", p.Name),
		fmt.Sprintf("Premium Amount: %s (%s)", formatAmount(p.Currency, p.PremiumAmount), p.PremiumFrequency),
		fmt.Sprintf("Guaranteed Maturity Value: %s", formatAmount(p.Currency, p.MaturityValue)),
	}

	var totalInvested float64
	for _, year := range p.SortedYears() {
		rec := p.Years[year]
		sanitizeContributions(&rec)

		contributed := rec.TotalContributed()
		if year <= cutoffYear {
			totalInvested += contributed
		}

		logs = append(logs,
			fmt.Sprintf("--- Year %d ---", year),
			fmt.Sprintf("Premiums This Year: %s", formatAmount(p.Currency, contributed)),
			fmt.Sprintf("Total Premiums to Date: %s", formatAmount(p.Currency, totalInvested)),
		)

		rec.YearStartValue = p.MaturityValue
		rec.YearEndValue = p.MaturityValue
		rec.YearlyReturn = 0
		p.Years[year] = rec
	}

	currentValue := p.MaturityValue
	totalReturns := currentValue - totalInvested

	logs = append(logs,
		"=== Final Summary ===",
		fmt.Sprintf("Total Premiums Paid: %s", formatAmount(p.Currency, totalInvested)),
		fmt.Sprintf("Guaranteed Maturity Value: %s", formatAmount(p.Currency, currentValue)),
		fmt.Sprintf("Total Returns: %s", formatAmount(p.Currency, totalReturns)),
	)

	p.CalculationLog = logs
	p.TotalInvested = totalInvested
	p.CurrentValue = currentValue
	p.TotalReturns = totalReturns
}

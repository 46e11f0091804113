package projection

import (
	"fmt"

	"github.com/planfolio/planfolio-backend/internal/model"
)

// recalculateSIP walks a variable-contribution plan in ascending year order,
// carrying the running value across year boundaries. Within a year each
// month's contribution is added before growth is applied:
//
//	afterGrowth = (runningValue + contribution) * (1 + monthlyRate)
//
// A year with an active manual override skips compounding entirely: its end
// value is the override, and the yearly return becomes the residual
// (override - start - contributed), which may be negative. Total invested
// accumulates every contribution of every year regardless of overrides.
func recalculateSIP(p *model.Plan) {
	monthlyRate := p.AnnualReturn / 100 / 12

	var currentValue, totalInvested float64
	logs := []string{
		fmt.Sprintf("=== %s SIP Calculation Log ===", p.Name),
		fmt.Sprintf("Annual Return: %g%% | Monthly Return: %.4f%%", p.AnnualReturn, monthlyRate*100),
	}

	for _, year := range p.SortedYears() {
		rec := p.Years[year]
		sanitizeContributions(&rec)

		rec.YearStartValue = currentValue
		logs = append(logs,
			fmt.Sprintf("--- Year %d ---", year),
			fmt.Sprintf("Starting Value: %s", formatAmount(p.Currency, currentValue)),
		)

		if rec.OverrideActive && rec.OverrideValue != nil {
			contributed := rec.TotalContributed()
			totalInvested += contributed

			rec.YearEndValue = *rec.OverrideValue
			rec.YearlyReturn = *rec.OverrideValue - currentValue - contributed
			currentValue = *rec.OverrideValue

			logs = append(logs,
				fmt.Sprintf("MANUAL OVERRIDE: Using actual year end value: %s", formatAmount(p.Currency, rec.YearEndValue)),
				fmt.Sprintf("Total Contributed: %s", formatAmount(p.Currency, contributed)),
				fmt.Sprintf("Year Returns: %s", formatAmount(p.Currency, rec.YearlyReturn)),
				fmt.Sprintf("Year End Value: %s", formatAmount(p.Currency, rec.YearEndValue)),
			)
		} else {
			yearEndValue := currentValue
			for month := 0; month < model.MonthsPerYear; month++ {
				contribution := rec.Contributions[month]
				totalInvested += contribution

				beforeGrowth := yearEndValue + contribution
				yearEndValue = beforeGrowth * (1 + monthlyRate)
				monthlyGrowth := yearEndValue - beforeGrowth

				logs = append(logs, fmt.Sprintf("%s: Contributed %s, Growth %s, End: %s",
					monthNames[month],
					formatAmount(p.Currency, contribution),
					formatAmount(p.Currency, monthlyGrowth),
					formatAmount(p.Currency, yearEndValue),
				))
			}

			contributed := rec.TotalContributed()
			rec.YearEndValue = yearEndValue
			rec.YearlyReturn = yearEndValue - currentValue - contributed

			logs = append(logs,
				fmt.Sprintf("Year %d Summary:", year),
				fmt.Sprintf("  Total Contributed: %s", formatAmount(p.Currency, contributed)),
				fmt.Sprintf("  Year Growth: %s", formatAmount(p.Currency, rec.YearlyReturn)),
				fmt.Sprintf("  Year End Value: %s", formatAmount(p.Currency, rec.YearEndValue)),
			)

			currentValue = yearEndValue
		}

		p.Years[year] = rec
	}

	logs = append(logs,
		"=== Final Summary ===",
		fmt.Sprintf("Total Invested: %s", formatAmount(p.Currency, totalInvested)),
		fmt.Sprintf("Final Value: %s", formatAmount(p.Currency, currentValue)),
		fmt.Sprintf("Total Returns: %s", formatAmount(p.Currency, currentValue-totalInvested)),
	)

	p.CalculationLog = logs
	p.TotalInvested = totalInvested
	p.CurrentValue = currentValue
	p.TotalReturns = currentValue - totalInvested
}

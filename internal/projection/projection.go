// Package projection implements the plan recalculation engine. Recalculate is
// a pure function: it walks a plan's contribution schedule in strict
// chronological order and derives every year's start/end values, growth, and
// the plan-level aggregates. Each step's input is the prior step's output, so
// the walk is never reordered or partially recomputed.
package projection

import (
	"fmt"
	"math"
	"time"

	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/model"
)

var monthNames = [model.MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Recalculate returns a copy of the plan with all year records and aggregates
// recomputed, plus a fresh calculation trace. The input plan is not mutated.
//
// asOf supplies the calendar cutoff used by the insurance variant's
// total-invested accumulation; passing it explicitly keeps the computation a
// function of its inputs rather than of the wall clock.
func Recalculate(p model.Plan, asOf time.Time) (model.Plan, error) {
	out := p.Clone()

	switch out.Kind {
	case model.PlanKindSIP:
		recalculateSIP(&out)
	case model.PlanKindInsurance:
		recalculateInsurance(&out, asOf)
	default:
		return model.Plan{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownPlanKind, out.Kind)
	}

	return out, nil
}

// SanitizeAmount is the single coercion rule for contribution input: any
// value that is not a finite non-negative number becomes 0.
func SanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// sanitizeContributions applies SanitizeAmount to every month of a record.
func sanitizeContributions(rec *model.YearRecord) {
	for i, c := range rec.Contributions {
		rec.Contributions[i] = SanitizeAmount(c)
	}
}

// formatAmount renders a value for the calculation trace in the plan's
// currency convention.
func formatAmount(c model.Currency, v float64) string {
	return fmt.Sprintf("%s%.2f", c.Symbol(), v)
}

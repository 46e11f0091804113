package service

import (
	"math"

	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/projection"
)

// Schedule mutation and manual override operations. Each edit replaces the
// target entries, then triggers a full plan recalculation: an edit to any
// year changes every later year's start value, so partial recomputation is
// never sound. The service does not gate edits by plan status or by
// past/future year; callers are responsible for that.

// SetMonth replaces a single month's contribution for the given year.
// Amounts are sanitized through the engine's single coercion rule.
func (s *PlanService) SetMonth(planID string, year, monthIndex int, amount float64) (model.Plan, error) {
	if monthIndex < 0 || monthIndex >= model.MonthsPerYear {
		return model.Plan{}, apperrors.ErrInvalidMonthIndex
	}

	p, rec, err := s.loadPlanYear(planID, year)
	if err != nil {
		return model.Plan{}, err
	}

	rec.Contributions[monthIndex] = projection.SanitizeAmount(amount)
	p.Years[year] = rec

	return s.recalculateAndSave(p)
}

// SetAllMonths replaces every month of the given year with the same amount.
func (s *PlanService) SetAllMonths(planID string, year int, amount float64) (model.Plan, error) {
	p, rec, err := s.loadPlanYear(planID, year)
	if err != nil {
		return model.Plan{}, err
	}

	sanitized := projection.SanitizeAmount(amount)
	for i := range rec.Contributions {
		rec.Contributions[i] = sanitized
	}
	p.Years[year] = rec

	return s.recalculateAndSave(p)
}

// ZeroAllMonths clears every contribution of the given year.
func (s *PlanService) ZeroAllMonths(planID string, year int) (model.Plan, error) {
	return s.SetAllMonths(planID, year, 0)
}

// SetOverride replaces the calculated year-end value of a past year with an
// observed actual value. The override supersedes calculated growth for that
// year in every subsequent recalculation until cleared. Overrides on earlier
// years change the value entering later years, so the whole plan is re-walked.
func (s *PlanService) SetOverride(planID string, year int, actualValue float64) (model.Plan, error) {
	if math.IsNaN(actualValue) || math.IsInf(actualValue, 0) || actualValue < 0 {
		return model.Plan{}, apperrors.ErrInvalidOverrideValue
	}

	p, rec, err := s.loadPlanYear(planID, year)
	if err != nil {
		return model.Plan{}, err
	}
	if p.Kind != model.PlanKindSIP {
		return model.Plan{}, apperrors.ErrOverrideNotSupported
	}

	rec.OverrideValue = &actualValue
	rec.OverrideActive = true
	p.Years[year] = rec

	return s.recalculateAndSave(p)
}

// ClearOverride removes a year's manual override and restores calculated values.
func (s *PlanService) ClearOverride(planID string, year int) (model.Plan, error) {
	p, rec, err := s.loadPlanYear(planID, year)
	if err != nil {
		return model.Plan{}, err
	}
	if p.Kind != model.PlanKindSIP {
		return model.Plan{}, apperrors.ErrOverrideNotSupported
	}

	rec.OverrideValue = nil
	rec.OverrideActive = false
	p.Years[year] = rec

	return s.recalculateAndSave(p)
}

// Stop transitions the plan to stopped and zeroes every month of every year
// strictly after the current calendar year, then recalculates. Variable plans
// keep compounding on zero input; insurance plans stay flat at maturity value.
func (s *PlanService) Stop(planID string) (model.Plan, error) {
	p, err := s.planRepo.GetPlanOnID(planID)
	if err != nil {
		return model.Plan{}, err
	}
	if p.Status == model.PlanStatusStopped {
		return model.Plan{}, apperrors.ErrInvalidStatusTransition
	}

	currentYear := s.now().Year()
	for year, rec := range p.Years {
		if year > currentYear {
			rec.Contributions = [model.MonthsPerYear]float64{}
			p.Years[year] = rec
		}
	}
	p.Status = model.PlanStatusStopped

	return s.recalculateAndSave(p)
}

// Pause transitions an active plan to paused. No schedule mutation and no
// recalculation: aggregates are unchanged.
func (s *PlanService) Pause(planID string) (model.Plan, error) {
	return s.setStatus(planID, model.PlanStatusActive, model.PlanStatusPaused)
}

// Resume transitions a paused plan back to active.
func (s *PlanService) Resume(planID string) (model.Plan, error) {
	return s.setStatus(planID, model.PlanStatusPaused, model.PlanStatusActive)
}

func (s *PlanService) setStatus(planID string, from, to model.PlanStatus) (model.Plan, error) {
	p, err := s.planRepo.GetPlanOnID(planID)
	if err != nil {
		return model.Plan{}, err
	}
	if p.Status != from {
		return model.Plan{}, apperrors.ErrInvalidStatusTransition
	}

	p.Status = to
	if err := s.planRepo.SavePlan(p); err != nil {
		return model.Plan{}, err
	}

	return p, nil
}

func (s *PlanService) loadPlanYear(planID string, year int) (model.Plan, model.YearRecord, error) {
	p, err := s.planRepo.GetPlanOnID(planID)
	if err != nil {
		return model.Plan{}, model.YearRecord{}, err
	}

	rec, ok := p.Years[year]
	if !ok {
		return model.Plan{}, model.YearRecord{}, apperrors.ErrYearNotFound
	}

	return p, rec, nil
}

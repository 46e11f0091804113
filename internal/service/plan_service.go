package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/projection"
	"github.com/planfolio/planfolio-backend/internal/repository"
)

// PlanService handles plan registry operations: creation, deletion, reads,
// and the portfolio-level summary. Every mutation runs a full recalculation
// through the projection engine before persisting, so stored aggregates never
// drift from what a fresh recalculation would produce.
type PlanService struct {
	planRepo *repository.PlanRepository
	now      func() time.Time
}

// NewPlanService creates a new PlanService with the provided repository.
func NewPlanService(planRepo *repository.PlanRepository) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		now:      time.Now,
	}
}

// NewPlanServiceWithClock creates a PlanService with a fixed clock. Used by
// tests that need deterministic current-year behavior.
func NewPlanServiceWithClock(planRepo *repository.PlanRepository, now func() time.Time) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		now:      now,
	}
}

// CreatePlanInput carries the validated fields needed to create a plan.
type CreatePlanInput struct {
	Kind        model.PlanKind
	Name        string
	Currency    model.Currency
	StartYear   int
	PeriodYears int

	// SIP fields.
	AnnualReturn  float64
	InitialAmount float64

	// Insurance fields.
	PremiumAmount    float64
	PremiumFrequency model.PremiumFrequency
	MaturityValue    float64
}

// CreatePlan builds a fully initialized plan, pre-populating every year's
// contribution schedule per the plan kind's rule. Years strictly after the
// current calendar year start at zero: no contributions are assumed for the
// future at creation time. The new plan is recalculated and persisted before
// being returned.
func (s *PlanService) CreatePlan(input CreatePlanInput) (model.Plan, error) {
	asOf := s.now()
	currentYear := asOf.Year()

	p := model.Plan{
		ID:        uuid.New().String(),
		Kind:      input.Kind,
		Name:      input.Name,
		Currency:  input.Currency,
		StartYear: input.StartYear,
		EndYear:   input.StartYear + input.PeriodYears - 1,
		Status:    model.PlanStatusActive,
		Years:     make(map[int]model.YearRecord),
		CreatedAt: asOf,
	}

	var monthlyAmount float64
	switch input.Kind {
	case model.PlanKindSIP:
		p.AnnualReturn = input.AnnualReturn
		monthlyAmount = projection.SanitizeAmount(input.InitialAmount)
	case model.PlanKindInsurance:
		p.PremiumAmount = input.PremiumAmount
		p.PremiumFrequency = input.PremiumFrequency
		p.MaturityValue = input.MaturityValue
		monthlyAmount = input.PremiumAmount
		if input.PremiumFrequency == model.FrequencyAnnual {
			monthlyAmount = input.PremiumAmount / 12
		}
	}

	for year := p.StartYear; year <= p.EndYear; year++ {
		var rec model.YearRecord
		if year <= currentYear {
			for i := range rec.Contributions {
				rec.Contributions[i] = monthlyAmount
			}
		}
		p.Years[year] = rec
	}

	p, err := projection.Recalculate(p, asOf)
	if err != nil {
		return model.Plan{}, err
	}

	if err := s.planRepo.SavePlan(p); err != nil {
		return model.Plan{}, err
	}

	return p, nil
}

// GetPlan retrieves a single plan by ID.
func (s *PlanService) GetPlan(planID string) (model.Plan, error) {
	return s.planRepo.GetPlanOnID(planID)
}

// GetAllPlans retrieves every stored plan.
func (s *PlanService) GetAllPlans() ([]model.Plan, error) {
	return s.planRepo.GetPlans()
}

// DeletePlan removes a plan permanently. There is no soft delete.
func (s *PlanService) DeletePlan(planID string) error {
	return s.planRepo.DeletePlan(planID)
}

// GetCalculationLog recalculates the plan and returns the fresh trace. The
// trace is diagnostic text regenerated on demand, never persisted.
func (s *PlanService) GetCalculationLog(planID string) ([]string, error) {
	p, err := s.planRepo.GetPlanOnID(planID)
	if err != nil {
		return nil, err
	}

	p, err = projection.Recalculate(p, s.now())
	if err != nil {
		return nil, err
	}

	return p.CalculationLog, nil
}

// RecalculatePlan reruns the projection engine for a stored plan and persists
// the result. Used by the scheduled refresh: insurance aggregates depend on
// the calendar year, so stored values go stale at year boundaries without it.
func (s *PlanService) RecalculatePlan(planID string) (model.Plan, error) {
	p, err := s.planRepo.GetPlanOnID(planID)
	if err != nil {
		return model.Plan{}, err
	}

	p, err = projection.Recalculate(p, s.now())
	if err != nil {
		return model.Plan{}, err
	}

	if err := s.planRepo.SavePlan(p); err != nil {
		return model.Plan{}, err
	}

	return p, nil
}

// PortfolioSummary aggregates stored plan values.
type PortfolioSummary struct {
	PlanCount     int     `json:"planCount"`
	TotalInvested float64 `json:"totalInvested"`
	CurrentValue  float64 `json:"currentValue"`
	TotalReturns  float64 `json:"totalReturns"`
}

// GetPortfolioSummary sums the derived aggregates across all stored plans.
func (s *PlanService) GetPortfolioSummary() (PortfolioSummary, error) {
	plans, err := s.planRepo.GetPlans()
	if err != nil {
		return PortfolioSummary{}, err
	}

	summary := PortfolioSummary{PlanCount: len(plans)}
	for _, p := range plans {
		summary.TotalInvested += p.TotalInvested
		summary.CurrentValue += p.CurrentValue
	}
	summary.TotalReturns = summary.CurrentValue - summary.TotalInvested

	return summary, nil
}

// recalculateAndSave runs the projection engine on a mutated plan and
// persists the result.
func (s *PlanService) recalculateAndSave(p model.Plan) (model.Plan, error) {
	p, err := projection.Recalculate(p, s.now())
	if err != nil {
		return model.Plan{}, fmt.Errorf("recalculation failed: %w", err)
	}

	if err := s.planRepo.SavePlan(p); err != nil {
		return model.Plan{}, err
	}

	return p, nil
}

package service

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// refreshConcurrency bounds the fan-out of the nightly refresh. Plans are
// independent of each other; the projection walk within a plan stays strictly
// sequential.
const refreshConcurrency = 4

// RefreshService re-runs the projection engine for every stored plan.
// Insurance totals depend on the calendar year (future premiums are excluded
// from total invested), so persisted aggregates go stale at year boundaries
// unless refreshed.
type RefreshService struct {
	planService *PlanService
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(planService *PlanService) *RefreshService {
	return &RefreshService{planService: planService}
}

// RecalculateAll recalculates and persists every stored plan. The first
// failure cancels the remaining work.
func (s *RefreshService) RecalculateAll(ctx context.Context) error {
	plans, err := s.planService.GetAllPlans()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	for _, p := range plans {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.planService.RecalculatePlan(p.ID); err != nil {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("Recalculated %d plans", len(plans))
	return nil
}

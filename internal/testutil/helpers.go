package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/planfolio/planfolio-backend/internal/repository"
	"github.com/planfolio/planfolio-backend/internal/service"
)

// TestNow is the fixed clock used by test services. Pinning the current year
// keeps schedule pre-population and insurance cutoff behavior deterministic.
var TestNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

// MakeID generates a unique ID for test entities.
func MakeID() string {
	return uuid.New().String()
}

// NewTestPlanService creates a PlanService backed by the given database and
// pinned to TestNow.
func NewTestPlanService(t *testing.T, db *sql.DB) *service.PlanService {
	t.Helper()

	planRepo := repository.NewPlanRepository(db)

	return service.NewPlanServiceWithClock(planRepo, func() time.Time {
		return TestNow
	})
}

// NewTestSystemService creates a SystemService backed by the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestRefreshService creates a RefreshService sharing the plan service's
// pinned clock.
func NewTestRefreshService(t *testing.T, db *sql.DB) *service.RefreshService {
	t.Helper()

	return service.NewRefreshService(NewTestPlanService(t, db))
}

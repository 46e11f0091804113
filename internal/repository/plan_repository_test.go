package repository_test

import (
	"errors"
	"testing"

	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/repository"
	"github.com/planfolio/planfolio-backend/internal/testutil"
)

func TestPlanRepository_SavePlan(t *testing.T) {
	t.Run("round-trips a full plan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPlanRepository(db)

		override := 15000.0
		p := model.Plan{
			ID:           testutil.MakeID(),
			Kind:         model.PlanKindSIP,
			Name:         "Round Trip",
			Currency:     model.CurrencyUSD,
			StartYear:    2024,
			EndYear:      2025,
			Status:       model.PlanStatusActive,
			AnnualReturn: 12,
			Years: map[int]model.YearRecord{
				2024: {
					Contributions:  [model.MonthsPerYear]float64{1000, 1000, 0, 500},
					YearStartValue: 0,
					YearEndValue:   15000,
					YearlyReturn:   12500,
					OverrideValue:  &override,
					OverrideActive: true,
				},
				2025: {
					Contributions:  [model.MonthsPerYear]float64{},
					YearStartValue: 15000,
					YearEndValue:   16902,
					YearlyReturn:   1902,
				},
			},
			TotalInvested: 2500,
			CurrentValue:  16902,
			TotalReturns:  14402,
			CreatedAt:     testutil.TestNow,
		}

		if err := repo.SavePlan(p); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}

		stored, err := repo.GetPlanOnID(p.ID)
		if err != nil {
			t.Fatalf("GetPlanOnID failed: %v", err)
		}

		if stored.Kind != p.Kind || stored.Name != p.Name || stored.Currency != p.Currency {
			t.Errorf("Plan identity fields differ: %+v", stored)
		}
		if stored.AnnualReturn != 12 {
			t.Errorf("Expected annual return 12, got %v", stored.AnnualReturn)
		}
		if len(stored.Years) != 2 {
			t.Fatalf("Expected 2 year records, got %d", len(stored.Years))
		}

		rec := stored.Years[2024]
		if rec.Contributions != p.Years[2024].Contributions {
			t.Errorf("Contributions differ: %v", rec.Contributions)
		}
		if rec.OverrideValue == nil || *rec.OverrideValue != override {
			t.Errorf("Expected override %v, got %v", override, rec.OverrideValue)
		}
		if !rec.OverrideActive {
			t.Error("Expected override flag set")
		}

		if stored.Years[2025].OverrideValue != nil {
			t.Error("Expected no override on 2025")
		}
		if stored.TotalInvested != 2500 || stored.CurrentValue != 16902 {
			t.Errorf("Aggregates differ: %+v", stored)
		}
	})

	t.Run("second save replaces year schedule", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPlanRepository(db)

		p := testutil.NewSIPPlan().WithYears(2024, 3).Build(t, db)

		delete(p.Years, 2026)
		rec := p.Years[2024]
		rec.Contributions[0] = 7777
		p.Years[2024] = rec
		p.Name = "Renamed"

		if err := repo.SavePlan(p); err != nil {
			t.Fatalf("SavePlan failed: %v", err)
		}

		stored, err := repo.GetPlanOnID(p.ID)
		if err != nil {
			t.Fatalf("GetPlanOnID failed: %v", err)
		}

		if stored.Name != "Renamed" {
			t.Errorf("Expected renamed plan, got %s", stored.Name)
		}
		if len(stored.Years) != 2 {
			t.Errorf("Expected stale year removed, got %d records", len(stored.Years))
		}
		if got := stored.Years[2024].Contributions[0]; got != 7777 {
			t.Errorf("Expected updated contribution, got %v", got)
		}
	})

	t.Run("insurance fields survive persistence", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPlanRepository(db)

		p := testutil.NewInsurancePlan().Build(t, db)

		stored, err := repo.GetPlanOnID(p.ID)
		if err != nil {
			t.Fatalf("GetPlanOnID failed: %v", err)
		}

		if stored.PremiumAmount != p.PremiumAmount {
			t.Errorf("Expected premium %v, got %v", p.PremiumAmount, stored.PremiumAmount)
		}
		if stored.PremiumFrequency != model.FrequencyMonthly {
			t.Errorf("Expected monthly frequency, got %s", stored.PremiumFrequency)
		}
		if stored.MaturityValue != p.MaturityValue {
			t.Errorf("Expected maturity %v, got %v", p.MaturityValue, stored.MaturityValue)
		}
		// SIP-only column stays null for insurance plans.
		if stored.AnnualReturn != 0 {
			t.Errorf("Expected zero annual return, got %v", stored.AnnualReturn)
		}
	})
}

func TestPlanRepository_GetPlans(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewPlanRepository(db)

	plans, err := repo.GetPlans()
	if err != nil {
		t.Fatalf("GetPlans failed: %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("Expected empty slice, got %d plans", len(plans))
	}

	testutil.CreateSIPPlan(t, db, "One")
	testutil.CreateInsurancePlan(t, db, "Two")

	plans, err = repo.GetPlans()
	if err != nil {
		t.Fatalf("GetPlans failed: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("Expected 2 plans, got %d", len(plans))
	}
	for _, p := range plans {
		if len(p.Years) == 0 {
			t.Errorf("Plan %s: expected year schedule loaded", p.Name)
		}
	}
}

func TestPlanRepository_DeletePlan(t *testing.T) {
	t.Run("cascades to year schedule", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPlanRepository(db)

		p := testutil.CreateSIPPlan(t, db, "Doomed")

		if err := repo.DeletePlan(p.ID); err != nil {
			t.Fatalf("DeletePlan failed: %v", err)
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM plan_year WHERE plan_id = ?`, p.ID).Scan(&count); err != nil {
			t.Fatalf("Count query failed: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected cascaded delete, found %d orphan rows", count)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPlanRepository(db)

		if err := repo.DeletePlan(testutil.MakeID()); !errors.Is(err, apperrors.ErrPlanNotFound) {
			t.Errorf("Expected ErrPlanNotFound, got %v", err)
		}
	})
}

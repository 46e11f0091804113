package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/planfolio/planfolio-backend/internal/api/handlers"
	"github.com/planfolio/planfolio-backend/internal/model"
	"github.com/planfolio/planfolio-backend/internal/service"
	"github.com/planfolio/planfolio-backend/internal/testutil"
)

func TestPlanHandler_Plans(t *testing.T) {
	t.Run("returns empty array when no plans exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/plan/", nil)
		w := httptest.NewRecorder()

		handler.Plans(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		contentType := w.Header().Get("Content-Type")
		if contentType != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
		}

		var response []handlers.PlanResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("returns all plans", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))

		testutil.CreateSIPPlan(t, db, "First")
		testutil.CreateInsurancePlan(t, db, "Second")

		req := httptest.NewRequest(http.MethodGet, "/api/plan/", nil)
		w := httptest.NewRecorder()

		handler.Plans(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []handlers.PlanResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 2 {
			t.Errorf("Expected 2 plans, got %d", len(response))
		}
	})
}

func TestPlanHandler_CreatePlan(t *testing.T) {
	setupHandler := func(t *testing.T) *handlers.PlanHandler {
		t.Helper()
		db := testutil.SetupTestDB(t)
		return handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))
	}

	t.Run("creates sip plan", func(t *testing.T) {
		handler := setupHandler(t)

		body := []byte(`{
			"kind": "sip",
			"name": "Retirement",
			"currency": "USD",
			"startYear": 2024,
			"period": 3,
			"annualReturn": 12,
			"initialAmount": 1000
		}`)

		req := httptest.NewRequest(http.MethodPost, "/api/plan/", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreatePlan(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.PlanResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.ID == "" {
			t.Error("Expected generated ID")
		}
		if response.EndYear != 2026 {
			t.Errorf("Expected end year 2026, got %d", response.EndYear)
		}
		if response.Status != string(model.PlanStatusActive) {
			t.Errorf("Expected active status, got %s", response.Status)
		}
		if len(response.Years) != 3 {
			t.Errorf("Expected 3 year records, got %d", len(response.Years))
		}
		if response.TotalInvested != 36000 {
			t.Errorf("Expected total invested 36000, got %v", response.TotalInvested)
		}
	})

	t.Run("creates insurance plan", func(t *testing.T) {
		handler := setupHandler(t)

		body := []byte(`{
			"kind": "insurance",
			"name": "Life Cover",
			"currency": "PKR",
			"startYear": 2025,
			"period": 10,
			"premiumAmount": 5000,
			"premiumFrequency": "monthly",
			"maturityValue": 1000000
		}`)

		req := httptest.NewRequest(http.MethodPost, "/api/plan/", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreatePlan(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.PlanResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.CurrentValue != 1000000 {
			t.Errorf("Expected current value 1000000, got %v", response.CurrentValue)
		}
	})

	t.Run("rejects invalid body", func(t *testing.T) {
		handler := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/plan/", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()

		handler.CreatePlan(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("rejects missing kind fields", func(t *testing.T) {
		handler := setupHandler(t)

		// SIP without an annual return.
		body := []byte(`{
			"kind": "sip",
			"name": "Incomplete",
			"currency": "USD",
			"startYear": 2024,
			"period": 3
		}`)

		req := httptest.NewRequest(http.MethodPost, "/api/plan/", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreatePlan(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		handler := setupHandler(t)

		body := []byte(`{
			"kind": "pension",
			"name": "Mystery",
			"currency": "USD",
			"startYear": 2024,
			"period": 3
		}`)

		req := httptest.NewRequest(http.MethodPost, "/api/plan/", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreatePlan(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestPlanHandler_GetPlan(t *testing.T) {
	t.Run("returns plan by id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))

		p := testutil.CreateSIPPlan(t, db, "Lookup")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/plan/"+p.ID,
			map[string]string{"planId": p.ID},
		)
		w := httptest.NewRecorder()

		handler.GetPlan(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.PlanResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.ID != p.ID {
			t.Errorf("Expected ID %s, got %s", p.ID, response.ID)
		}
		if response.Name != "Lookup" {
			t.Errorf("Expected name 'Lookup', got %s", response.Name)
		}
	})

	t.Run("returns 404 for unknown plan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/plan/"+id,
			map[string]string{"planId": id},
		)
		w := httptest.NewRecorder()

		handler.GetPlan(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestPlanHandler_DeletePlan(t *testing.T) {
	t.Run("deletes existing plan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))

		p := testutil.CreateSIPPlan(t, db, "Doomed")

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/plan/"+p.ID,
			map[string]string{"planId": p.ID},
		)
		w := httptest.NewRecorder()

		handler.DeletePlan(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
	})

	t.Run("returns 404 for unknown plan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/plan/"+id,
			map[string]string{"planId": id},
		)
		w := httptest.NewRecorder()

		handler.DeletePlan(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestPlanHandler_CalculationLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewPlanHandler(testutil.NewTestPlanService(t, db))

	p := testutil.CreateSIPPlan(t, db, "Traced")

	req := testutil.NewRequestWithURLParams(
		http.MethodGet,
		"/api/plan/"+p.ID+"/log",
		map[string]string{"planId": p.ID},
	)
	w := httptest.NewRecorder()

	handler.CalculationLog(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response handlers.CalculationLogResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.PlanID != p.ID {
		t.Errorf("Expected plan ID %s, got %s", p.ID, response.PlanID)
	}
	if len(response.Log) == 0 {
		t.Error("Expected non-empty calculation log")
	}
}

func TestPlanHandler_PortfolioSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ps := testutil.NewTestPlanService(t, db)
	handler := handlers.NewPlanHandler(ps)

	if _, err := ps.CreatePlan(service.CreatePlanInput{
		Kind:          model.PlanKindSIP,
		Name:          "Summed",
		Currency:      model.CurrencyUSD,
		StartYear:     2024,
		PeriodYears:   3,
		AnnualReturn:  12,
		InitialAmount: 1000,
	}); err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/plan/summary", nil)
	w := httptest.NewRecorder()

	handler.PortfolioSummary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response service.PortfolioSummary
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.PlanCount != 1 {
		t.Errorf("Expected 1 plan, got %d", response.PlanCount)
	}
	if response.TotalInvested != 36000 {
		t.Errorf("Expected total invested 36000, got %v", response.TotalInvested)
	}
}

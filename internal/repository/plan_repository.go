package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/planfolio/planfolio-backend/internal/apperrors"
	"github.com/planfolio/planfolio-backend/internal/model"
)

// PlanRepository provides data access methods for the plan and plan_year
// tables. The projection engine never sees SQL; this layer converts rows to
// plain model values and writes them back as a full state replace.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository with the provided database connection.
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `id, kind, name, currency, start_year, end_year, status,
          annual_return, premium_amount, premium_frequency, maturity_value,
          total_invested, current_value, total_returns, created_at`

// GetPlans retrieves all plans with their full year schedules.
// Returns an empty slice when no plans exist.
func (r *PlanRepository) GetPlans() ([]model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plan ORDER BY created_at`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePlans, err)
	}
	defer rows.Close()

	plans := []model.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePlans, err)
		}
		plans = append(plans, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePlans, err)
	}

	for i := range plans {
		years, err := r.getPlanYears(plans[i].ID)
		if err != nil {
			return nil, err
		}
		plans[i].Years = years
	}

	return plans, nil
}

// GetPlanOnID retrieves a single plan with its full year schedule.
func (r *PlanRepository) GetPlanOnID(planID string) (model.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plan WHERE id = ?`

	row := r.db.QueryRow(query, planID)
	p, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return model.Plan{}, apperrors.ErrPlanNotFound
	}
	if err != nil {
		return model.Plan{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePlan, err)
	}

	years, err := r.getPlanYears(planID)
	if err != nil {
		return model.Plan{}, err
	}
	p.Years = years

	return p, nil
}

// SavePlan persists a plan and its entire year schedule, replacing any prior
// state in one transaction. Every mutation path runs a full recalculation, so
// a full-state write keeps stored aggregates consistent with the schedule.
func (r *PlanRepository) SavePlan(p model.Plan) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToSavePlan, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	upsert := `
          INSERT INTO plan (` + planColumns + `)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
          ON CONFLICT(id) DO UPDATE SET
              name = excluded.name,
              currency = excluded.currency,
              start_year = excluded.start_year,
              end_year = excluded.end_year,
              status = excluded.status,
              annual_return = excluded.annual_return,
              premium_amount = excluded.premium_amount,
              premium_frequency = excluded.premium_frequency,
              maturity_value = excluded.maturity_value,
              total_invested = excluded.total_invested,
              current_value = excluded.current_value,
              total_returns = excluded.total_returns
      `

	_, err = tx.Exec(upsert,
		p.ID,
		string(p.Kind),
		p.Name,
		string(p.Currency),
		p.StartYear,
		p.EndYear,
		string(p.Status),
		nullableFloat(p.Kind == model.PlanKindSIP, p.AnnualReturn),
		nullableFloat(p.Kind == model.PlanKindInsurance, p.PremiumAmount),
		nullableString(p.Kind == model.PlanKindInsurance, string(p.PremiumFrequency)),
		nullableFloat(p.Kind == model.PlanKindInsurance, p.MaturityValue),
		p.TotalInvested,
		p.CurrentValue,
		p.TotalReturns,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: upsert plan row: %v", apperrors.ErrFailedToSavePlan, err)
	}

	if _, err = tx.Exec(`DELETE FROM plan_year WHERE plan_id = ?`, p.ID); err != nil {
		return fmt.Errorf("%w: clear plan_year rows: %v", apperrors.ErrFailedToSavePlan, err)
	}

	insertYear := `
          INSERT INTO plan_year (id, plan_id, year, contributions,
              year_start_value, year_end_value, yearly_return,
              override_value, override_active)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	for _, year := range p.SortedYears() {
		rec := p.Years[year]

		contributions, err := json.Marshal(rec.Contributions)
		if err != nil {
			return fmt.Errorf("%w: encode contributions for year %d: %v", apperrors.ErrFailedToSavePlan, year, err)
		}

		var overrideValue sql.NullFloat64
		if rec.OverrideValue != nil {
			overrideValue = sql.NullFloat64{Float64: *rec.OverrideValue, Valid: true}
		}

		_, err = tx.Exec(insertYear,
			uuid.New().String(),
			p.ID,
			year,
			string(contributions),
			rec.YearStartValue,
			rec.YearEndValue,
			rec.YearlyReturn,
			overrideValue,
			rec.OverrideActive,
		)
		if err != nil {
			return fmt.Errorf("%w: insert plan_year row for year %d: %v", apperrors.ErrFailedToSavePlan, year, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", apperrors.ErrFailedToSavePlan, err)
	}

	return nil
}

// DeletePlan removes a plan; the year schedule cascades.
func (r *PlanRepository) DeletePlan(planID string) error {
	result, err := r.db.Exec(`DELETE FROM plan WHERE id = ?`, planID)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToDeletePlan, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToDeletePlan, err)
	}
	if affected == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(row scanner) (model.Plan, error) {
	var p model.Plan
	var kind, currency, status string
	var annualReturn, premiumAmount, maturityValue sql.NullFloat64
	var premiumFrequency sql.NullString

	err := row.Scan(
		&p.ID,
		&kind,
		&p.Name,
		&currency,
		&p.StartYear,
		&p.EndYear,
		&status,
		&annualReturn,
		&premiumAmount,
		&premiumFrequency,
		&maturityValue,
		&p.TotalInvested,
		&p.CurrentValue,
		&p.TotalReturns,
		&p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Plan{}, err
	}
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to scan plan row: %w", err)
	}

	p.Kind = model.PlanKind(kind)
	p.Currency = model.Currency(currency)
	p.Status = model.PlanStatus(status)
	p.AnnualReturn = annualReturn.Float64
	p.PremiumAmount = premiumAmount.Float64
	p.PremiumFrequency = model.PremiumFrequency(premiumFrequency.String)
	p.MaturityValue = maturityValue.Float64

	return p, nil
}

func (r *PlanRepository) getPlanYears(planID string) (map[int]model.YearRecord, error) {
	query := `
          SELECT year, contributions, year_start_value, year_end_value,
                 yearly_return, override_value, override_active
          FROM plan_year
          WHERE plan_id = ?
      `

	rows, err := r.db.Query(query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan_year table: %w", err)
	}
	defer rows.Close()

	years := make(map[int]model.YearRecord)
	for rows.Next() {
		var year int
		var contributions string
		var rec model.YearRecord
		var overrideValue sql.NullFloat64

		err := rows.Scan(
			&year,
			&contributions,
			&rec.YearStartValue,
			&rec.YearEndValue,
			&rec.YearlyReturn,
			&overrideValue,
			&rec.OverrideActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan_year row: %w", err)
		}

		if err := json.Unmarshal([]byte(contributions), &rec.Contributions); err != nil {
			return nil, fmt.Errorf("failed to decode contributions for year %d: %w", year, err)
		}
		if overrideValue.Valid {
			v := overrideValue.Float64
			rec.OverrideValue = &v
		}

		years[year] = rec
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan_year table: %w", err)
	}

	return years, nil
}

func nullableFloat(valid bool, v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: valid}
}

func nullableString(valid bool, v string) sql.NullString {
	return sql.NullString{String: v, Valid: valid && v != ""}
}

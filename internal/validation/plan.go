package validation

import (
	"strings"

	"github.com/planfolio/planfolio-backend/internal/api/request"
	"github.com/planfolio/planfolio-backend/internal/model"
)

// ValidateCreatePlan validates a plan creation request.
//
// Required fields for every plan:
//   - kind: must be "sip" or "insurance"
//   - name: non-empty, at most 100 characters
//   - currency: "USD" or "PKR"
//   - startYear: between 1970 and 2200
//   - period: between 1 and 100 years
//
// SIP plans additionally require:
//   - annualReturn: non-negative
//
// Insurance plans additionally require:
//   - premiumAmount: positive
//   - premiumFrequency: "monthly" or "annual"
//   - maturityValue: positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreatePlan(req request.CreatePlanRequest) error {
	errors := make(map[string]string)

	kind := model.PlanKind(req.Kind)
	if kind != model.PlanKindSIP && kind != model.PlanKindInsurance {
		errors["kind"] = "kind must be sip or insurance"
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be at most 100 characters"
	}

	currency := model.Currency(req.Currency)
	if currency != model.CurrencyUSD && currency != model.CurrencyPKR {
		errors["currency"] = "currency must be USD or PKR"
	}

	if req.StartYear < 1970 || req.StartYear > 2200 {
		errors["startYear"] = "startYear must be between 1970 and 2200"
	}

	if req.Period < 1 || req.Period > 100 {
		errors["period"] = "period must be between 1 and 100 years"
	}

	switch kind {
	case model.PlanKindSIP:
		if req.AnnualReturn == nil {
			errors["annualReturn"] = "annualReturn is required for sip plans"
		} else if *req.AnnualReturn < 0 {
			errors["annualReturn"] = "annualReturn must not be negative"
		}
	case model.PlanKindInsurance:
		if req.PremiumAmount == nil || *req.PremiumAmount <= 0 {
			errors["premiumAmount"] = "premiumAmount must be positive"
		}
		if req.PremiumFrequency == nil {
			errors["premiumFrequency"] = "premiumFrequency is required for insurance plans"
		} else {
			freq := model.PremiumFrequency(*req.PremiumFrequency)
			if freq != model.FrequencyMonthly && freq != model.FrequencyAnnual {
				errors["premiumFrequency"] = "premiumFrequency must be monthly or annual"
			}
		}
		if req.MaturityValue == nil || *req.MaturityValue <= 0 {
			errors["maturityValue"] = "maturityValue must be positive"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

package validation

import (
	"fmt"
	"strings"

	"github.com/planfolio/planfolio-backend/internal/api/request"
)

// ValidateAnalyzeRequest validates a multi-asset analysis request.
//
// The asset list must be non-empty. For each asset:
//   - name: non-empty
//   - investmentAmount: positive
//   - currentValue: non-negative
//   - years: non-negative, months: 0-11
//   - the combined holding period must be greater than zero
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateAnalyzeRequest(req request.AnalyzeRequest) error {
	errors := make(map[string]string)

	if len(req.Assets) == 0 {
		errors["assets"] = "at least one asset is required"
		return &Error{Fields: errors}
	}

	for i, asset := range req.Assets {
		field := func(name string) string {
			return fmt.Sprintf("assets[%d].%s", i, name)
		}

		if strings.TrimSpace(asset.Name) == "" {
			errors[field("name")] = "name is required"
		}
		if asset.InvestmentAmount <= 0 {
			errors[field("investmentAmount")] = "investmentAmount must be positive"
		}
		if asset.CurrentValue < 0 {
			errors[field("currentValue")] = "currentValue must not be negative"
		}
		if asset.Years < 0 {
			errors[field("years")] = "years must not be negative"
		}
		if asset.Months < 0 || asset.Months > 11 {
			errors[field("months")] = "months must be between 0 and 11"
		}
		if asset.Years <= 0 && asset.Months <= 0 {
			errors[field("years")] = "holding period must be greater than zero"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

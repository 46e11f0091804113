package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPlanNotFound indicates that a plan with the given ID does not exist.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrYearNotFound indicates that a plan has no schedule record for the given year.
	ErrYearNotFound = errors.New("year not found in plan schedule")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidMonthIndex indicates a month index outside the 0-11 range.
	ErrInvalidMonthIndex = errors.New("month index must be between 0 and 11")

	// ErrInvalidOverrideValue indicates an override value that is negative or
	// not a finite number.
	ErrInvalidOverrideValue = errors.New("override value must be a non-negative finite number")

	// ErrOverrideNotSupported indicates an override operation on a plan kind
	// that has no override concept (insurance plans).
	ErrOverrideNotSupported = errors.New("manual override is not supported for this plan kind")

	// ErrUnknownPlanKind indicates a plan kind the projection engine cannot dispatch on.
	ErrUnknownPlanKind = errors.New("unknown plan kind")

	// ErrInvalidStatusTransition indicates a status change that is not allowed
	// from the plan's current status.
	ErrInvalidStatusTransition = errors.New("invalid plan status transition")

	// ErrInvalidAnalysisInput indicates asset analysis input that cannot produce
	// defined metrics (non-positive investment or holding period).
	ErrInvalidAnalysisInput = errors.New("invalid analysis input")

	// ErrEmptyAssetList indicates an analysis request without any assets.
	ErrEmptyAssetList = errors.New("at least one asset is required")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrievePlans = errors.New("failed to retrieve plans")
	ErrFailedToRetrievePlan  = errors.New("failed to retrieve plan")
	ErrFailedToSavePlan      = errors.New("failed to save plan")
	ErrFailedToDeletePlan    = errors.New("failed to delete plan")
)

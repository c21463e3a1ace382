package errs

import "errors"

// Domain-specific sentinel errors for the pricing/availability usecase layers
var (
	// Pricing errors
	ErrInvalidInterval  = errors.New("end time must be after start time")
	ErrInvalidBasePrice = errors.New("base price must be positive")

	// Rule errors
	ErrRuleNotFound      = errors.New("pricing rule not found")
	ErrInvalidRule       = errors.New("invalid pricing rule")
	ErrInvalidCondition  = errors.New("invalid rule condition")
	ErrInvalidMultiplier = errors.New("multiplier must be positive")

	// Forecast errors
	ErrInvalidDateRange = errors.New("invalid forecast date range")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

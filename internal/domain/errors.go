package domain

import "errors"

// Engine error kinds. All are deterministic value-level failures; callers
// decide whether to surface them or substitute presentation defaults.
var (
	// ErrInvalidRange indicates a date range whose end precedes its start.
	ErrInvalidRange = errors.New("end date is before start date")

	// ErrMissingDateRange indicates a CUSTOM period without both explicit bounds.
	ErrMissingDateRange = errors.New("custom period requires both start and end dates")

	// ErrMissingAcquisitionDate indicates a BY_USAGE_DATE asset with neither
	// usage date nor purchase date.
	ErrMissingAcquisitionDate = errors.New("asset has neither usage date nor purchase date")

	// ErrInvalidUsageCount indicates a BY_USAGE_COUNT asset whose expected
	// usage count is absent or not positive.
	ErrInvalidUsageCount = errors.New("expected usage count must be positive")

	// ErrInvalidTransition indicates a lifecycle operation rejected by the
	// transition table.
	ErrInvalidTransition = errors.New("asset status transition not allowed")

	// ErrUnsupportedChartKind indicates an unknown statistics chart kind.
	ErrUnsupportedChartKind = errors.New("unsupported chart kind")
)

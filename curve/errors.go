package curve

import "errors"

var (
	// ErrInvalidInput is returned for malformed or insufficient curve data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExtrapolation is returned when a query falls outside the curve range
	// and extrapolation is disabled.
	ErrExtrapolation = errors.New("extrapolation not allowed")
)

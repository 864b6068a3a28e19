package report

import (
	"errors"

	"github.com/meenmo/yieldcurve/curve"
)

// ErrorKind classifies a run failure for the one-line diagnostic.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, curve.ErrInvalidInput):
		return "invalid input"
	case errors.Is(err, curve.ErrExtrapolation):
		return "extrapolation error"
	default:
		return "unknown error"
	}
}

package curve

import (
	"fmt"
	"strings"
)

// Method selects the interpolation scheme of a curve.
type Method int

const (
	Linear Method = iota
	Cubic
)

// ParseMethod accepts "linear", "cubic" and "natural_cubic".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "cubic", "natural_cubic", "cubic_spline", "spline":
		return Cubic, nil
	default:
		return 0, fmt.Errorf("%w: unknown interpolation method %q", ErrInvalidInput, s)
	}
}

func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Label is the column heading used in reports.
func (m Method) Label() string {
	switch m {
	case Linear:
		return "Linear Rate"
	case Cubic:
		return "Cubic Spline Rate"
	default:
		return m.String()
	}
}

// MinPoints is the smallest number of knots the method can be built on.
// The natural spline needs three so that an interior second derivative exists.
func (m Method) MinPoints() int {
	if m == Cubic {
		return 3
	}
	return 2
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	parsed, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// interpolator evaluates a fitted function. Outside the knot range it extends
// the boundary segment; range checks belong to the caller.
type interpolator interface {
	value(t float64) float64
}

func newInterpolator(m Method, ts, ys []float64) (interpolator, error) {
	switch m {
	case Linear:
		return newLinear(ts, ys), nil
	case Cubic:
		return newNaturalCubic(ts, ys), nil
	default:
		return nil, fmt.Errorf("%w: unknown interpolation method %d", ErrInvalidInput, int(m))
	}
}

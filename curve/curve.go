package curve

import (
	"fmt"
	"math"
	"time"
)

// InterpolatedCurve answers zero rate queries over a fixed set of knots. It is
// immutable after construction and safe for concurrent use.
type InterpolatedCurve struct {
	ts, rates   []float64
	method      Method
	extrapolate bool
	interp      interpolator
	store       *Store
}

// New fits method through points. Points must have strictly increasing,
// non-negative times and finite rates; Linear needs two points, Cubic three.
func New(points []Point, method Method, extrapolate bool) (*InterpolatedCurve, error) {
	if method != Linear && method != Cubic {
		return nil, fmt.Errorf("%w: unknown interpolation method %d", ErrInvalidInput, int(method))
	}
	if len(points) < method.MinPoints() {
		return nil, fmt.Errorf("%w: %s interpolation needs at least %d points, got %d",
			ErrInvalidInput, method, method.MinPoints(), len(points))
	}

	ts := make([]float64, len(points))
	rates := make([]float64, len(points))
	for i, p := range points {
		if !isFinite(p.T) || !isFinite(p.Rate) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidInput, i)
		}
		if p.T < 0 {
			return nil, fmt.Errorf("%w: point %d has negative time %g", ErrInvalidInput, i, p.T)
		}
		if i > 0 && p.T <= points[i-1].T {
			return nil, fmt.Errorf("%w: times must be strictly increasing (t[%d]=%g, t[%d]=%g)",
				ErrInvalidInput, i-1, points[i-1].T, i, p.T)
		}
		ts[i] = p.T
		rates[i] = p.Rate
	}

	interp, err := newInterpolator(method, ts, rates)
	if err != nil {
		return nil, err
	}
	return &InterpolatedCurve{
		ts:          ts,
		rates:       rates,
		method:      method,
		extrapolate: extrapolate,
		interp:      interp,
	}, nil
}

// NewFromStore builds a curve over the store's knots and keeps the store for
// date based queries.
func NewFromStore(s *Store, method Method, extrapolate bool) (*InterpolatedCurve, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil curve store", ErrInvalidInput)
	}
	c, err := New(s.points, method, extrapolate)
	if err != nil {
		return nil, err
	}
	c.store = s
	return c, nil
}

// Method returns the interpolation scheme.
func (c *InterpolatedCurve) Method() Method {
	return c.method
}

// Extrapolates reports whether queries outside [MinTime, MaxTime] are allowed.
func (c *InterpolatedCurve) Extrapolates() bool {
	return c.extrapolate
}

// MinTime returns the first knot time.
func (c *InterpolatedCurve) MinTime() float64 {
	return c.ts[0]
}

// MaxTime returns the last knot time.
func (c *InterpolatedCurve) MaxTime() float64 {
	return c.ts[len(c.ts)-1]
}

// ZeroRate returns the zero rate for maturity t (years) quoted under comp.
// Knot times return the knot rate exactly.
func (c *InterpolatedCurve) ZeroRate(t float64, comp Compounding) (float64, error) {
	r, err := c.continuousRate(t)
	if err != nil {
		return 0, err
	}
	return comp.fromContinuous(r, t)
}

// ZeroRateAt is ZeroRate for a date, measured from the store's evaluation date.
func (c *InterpolatedCurve) ZeroRateAt(d time.Time, comp Compounding) (float64, error) {
	if c.store == nil {
		return 0, fmt.Errorf("%w: curve was built without dates", ErrInvalidInput)
	}
	return c.ZeroRate(c.store.TimeOf(d), comp)
}

// DiscountFactor returns exp(-r(t)*t).
func (c *InterpolatedCurve) DiscountFactor(t float64) (float64, error) {
	r, err := c.continuousRate(t)
	if err != nil {
		return 0, err
	}
	return math.Exp(-r * t), nil
}

// ForwardRate returns the continuously compounded forward rate between t1
// and t2 implied by the zero curve.
func (c *InterpolatedCurve) ForwardRate(t1, t2 float64) (float64, error) {
	if !(t2 > t1) {
		return 0, fmt.Errorf("%w: forward period [%g, %g] is empty", ErrInvalidInput, t1, t2)
	}
	r1, err := c.continuousRate(t1)
	if err != nil {
		return 0, err
	}
	r2, err := c.continuousRate(t2)
	if err != nil {
		return 0, err
	}
	return (r2*t2 - r1*t1) / (t2 - t1), nil
}

func (c *InterpolatedCurve) continuousRate(t float64) (float64, error) {
	if !isFinite(t) || t < 0 {
		return 0, fmt.Errorf("%w: time %g", ErrInvalidInput, t)
	}
	if i := knotIndex(c.ts, t); i >= 0 {
		return c.rates[i], nil
	}
	if !c.extrapolate && (t < c.MinTime() || t > c.MaxTime()) {
		return 0, fmt.Errorf("%w: time %g outside [%g, %g]", ErrExtrapolation, t, c.MinTime(), c.MaxTime())
	}
	return c.interp.value(t), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

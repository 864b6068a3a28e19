package curve

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/yieldcurve/utils"
)

// MarketQuote is a zero rate quoted for a maturity date. Rate is a decimal
// (0.03 == 3%) and continuously compounded.
type MarketQuote struct {
	Maturity time.Time
	Rate     float64
}

// Point is a curve knot: time in years from the evaluation date and the zero
// rate at that time.
type Point struct {
	T    float64
	Rate float64
}

// Store holds the curve knots derived from dated quotes. It is immutable.
type Store struct {
	evaluationDate time.Time
	dayCount       utils.DayCount
	maturities     []time.Time
	points         []Point
}

// NewStore converts quotes into knots using dc measured from evaluationDate.
// An empty dc means ACT/365F; unknown conventions are rejected.
// Quotes must be non-empty, strictly increasing in maturity and after the
// evaluation date.
func NewStore(evaluationDate time.Time, quotes []MarketQuote, dc utils.DayCount) (*Store, error) {
	if len(quotes) == 0 {
		return nil, fmt.Errorf("%w: no market quotes", ErrInvalidInput)
	}
	if dc == "" {
		dc = utils.Act365F
	}
	dc, err := utils.ParseDayCount(string(dc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s := &Store{
		evaluationDate: evaluationDate,
		dayCount:       dc,
		maturities:     make([]time.Time, 0, len(quotes)),
		points:         make([]Point, 0, len(quotes)),
	}
	for i, q := range quotes {
		if math.IsNaN(q.Rate) || math.IsInf(q.Rate, 0) {
			return nil, fmt.Errorf("%w: quote %d has non-finite rate", ErrInvalidInput, i)
		}
		if !q.Maturity.After(evaluationDate) {
			return nil, fmt.Errorf("%w: quote %d maturity %s is not after evaluation date %s",
				ErrInvalidInput, i, q.Maturity.Format(utils.DateLayout), evaluationDate.Format(utils.DateLayout))
		}
		if i > 0 {
			prev := quotes[i-1].Maturity
			if q.Maturity.Equal(prev) {
				return nil, fmt.Errorf("%w: duplicate maturity %s", ErrInvalidInput, q.Maturity.Format(utils.DateLayout))
			}
			if q.Maturity.Before(prev) {
				return nil, fmt.Errorf("%w: maturity %s is before %s", ErrInvalidInput,
					q.Maturity.Format(utils.DateLayout), prev.Format(utils.DateLayout))
			}
		}

		t := dc.YearFraction(evaluationDate, q.Maturity)
		if i > 0 && t <= s.points[i-1].T {
			// 30E/360 can map distinct dates onto the same time.
			return nil, fmt.Errorf("%w: maturity %s does not increase curve time under %s",
				ErrInvalidInput, q.Maturity.Format(utils.DateLayout), dc)
		}
		s.maturities = append(s.maturities, q.Maturity)
		s.points = append(s.points, Point{T: t, Rate: q.Rate})
	}
	return s, nil
}

// EvaluationDate returns the date curve times are measured from.
func (s *Store) EvaluationDate() time.Time {
	return s.evaluationDate
}

// DayCount returns the convention of the curve time axis.
func (s *Store) DayCount() utils.DayCount {
	return s.dayCount
}

// Points returns a copy of the knots.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Maturities returns a copy of the quote dates, aligned with Points.
func (s *Store) Maturities() []time.Time {
	out := make([]time.Time, len(s.maturities))
	copy(out, s.maturities)
	return out
}

// TimeOf returns the year fraction from the evaluation date to d.
func (s *Store) TimeOf(d time.Time) float64 {
	return s.dayCount.YearFraction(s.evaluationDate, d)
}

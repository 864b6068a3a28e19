package curve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/yieldcurve/curve"
	"github.com/meenmo/yieldcurve/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStore_YearFractions(t *testing.T) {
	t.Parallel()

	eval := date(2025, 1, 1)
	quotes := []curve.MarketQuote{
		{Maturity: date(2025, 7, 2), Rate: 0.03},
		{Maturity: date(2026, 1, 1), Rate: 0.035},
		{Maturity: date(2027, 1, 1), Rate: 0.0375},
	}
	s, err := curve.NewStore(eval, quotes, utils.Act365F)
	require.NoError(t, err)

	pts := s.Points()
	require.Len(t, pts, 3)
	assert.InDelta(t, 182.0/365.0, pts[0].T, 1e-15)
	assert.InDelta(t, 1.0, pts[1].T, 1e-15)
	assert.InDelta(t, 730.0/365.0, pts[2].T, 1e-15)
	assert.Equal(t, 0.035, pts[1].Rate)

	assert.Equal(t, eval, s.EvaluationDate())
	assert.Equal(t, utils.Act365F, s.DayCount())
	assert.InDelta(t, 2.0, s.TimeOf(date(2027, 1, 1)), 1e-15)
	assert.Equal(t, date(2027, 1, 1), s.Maturities()[2])

	// Points returns a copy.
	pts[0].Rate = 1
	assert.Equal(t, 0.03, s.Points()[0].Rate)
}

func TestNewStore_DefaultDayCount(t *testing.T) {
	t.Parallel()

	s, err := curve.NewStore(date(2025, 1, 1), []curve.MarketQuote{{Maturity: date(2026, 1, 1), Rate: 0.03}}, "")
	require.NoError(t, err)
	assert.Equal(t, utils.Act365F, s.DayCount())
	assert.InDelta(t, 1.0, s.Points()[0].T, 1e-15)
}

func TestNewStore_InvalidInput(t *testing.T) {
	t.Parallel()

	eval := date(2025, 1, 1)
	tests := []struct {
		name   string
		quotes []curve.MarketQuote
		dc     utils.DayCount
	}{
		{"empty", nil, utils.Act365F},
		{"duplicate", []curve.MarketQuote{
			{Maturity: date(2026, 1, 1), Rate: 0.03},
			{Maturity: date(2026, 1, 1), Rate: 0.04},
		}, utils.Act365F},
		{"out of order", []curve.MarketQuote{
			{Maturity: date(2027, 1, 1), Rate: 0.03},
			{Maturity: date(2026, 1, 1), Rate: 0.04},
		}, utils.Act365F},
		{"on evaluation date", []curve.MarketQuote{{Maturity: eval, Rate: 0.03}}, utils.Act365F},
		{"collapsed by 30E/360", []curve.MarketQuote{
			{Maturity: date(2025, 1, 30), Rate: 0.03},
			{Maturity: date(2025, 1, 31), Rate: 0.04},
		}, utils.E30360},
		{"unknown day count", []curve.MarketQuote{{Maturity: date(2026, 1, 1), Rate: 0.03}}, utils.DayCount("ACT/ACT")},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := curve.NewStore(eval, tc.quotes, tc.dc)
			assert.ErrorIs(t, err, curve.ErrInvalidInput)
		})
	}
}

func TestNewStore_NormalizesDayCount(t *testing.T) {
	t.Parallel()

	eval := date(2025, 1, 1)
	s, err := curve.NewStore(eval, []curve.MarketQuote{{Maturity: date(2026, 1, 1), Rate: 0.03}}, utils.DayCount("actual/360"))
	require.NoError(t, err)
	assert.Equal(t, utils.Act360, s.DayCount())
	assert.InDelta(t, 365.0/360.0, s.Points()[0].T, 1e-15)
}

func TestNewFromStore_ZeroRateAt(t *testing.T) {
	t.Parallel()

	eval := date(2025, 1, 1)
	s, err := curve.NewStore(eval, []curve.MarketQuote{
		{Maturity: date(2026, 1, 1), Rate: 0.03},
		{Maturity: date(2027, 1, 1), Rate: 0.04},
		{Maturity: date(2028, 1, 1), Rate: 0.045},
	}, utils.Act365F)
	require.NoError(t, err)

	c, err := curve.NewFromStore(s, curve.Linear, false)
	require.NoError(t, err)

	r, err := c.ZeroRateAt(date(2027, 1, 1), curve.Continuous)
	require.NoError(t, err)
	assert.Equal(t, 0.04, r)

	_, err = c.ZeroRateAt(date(2030, 1, 1), curve.Continuous)
	assert.ErrorIs(t, err, curve.ErrExtrapolation)

	bare, err := curve.New(s.Points(), curve.Linear, false)
	require.NoError(t, err)
	_, err = bare.ZeroRateAt(date(2027, 1, 1), curve.Continuous)
	assert.ErrorIs(t, err, curve.ErrInvalidInput)

	_, err = curve.NewFromStore(nil, curve.Linear, false)
	assert.ErrorIs(t, err, curve.ErrInvalidInput)
}

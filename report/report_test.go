package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meenmo/yieldcurve/config"
	"github.com/meenmo/yieldcurve/curve"
	"github.com/meenmo/yieldcurve/marketdata"
	"github.com/meenmo/yieldcurve/report"
	"github.com/meenmo/yieldcurve/utils"
)

const referenceTable = `Evaluation Date: August 24th, 2025
----------------------------------------------------
Maturity    | Linear Rate | Cubic Spline Rate
----------------------------------------------------
3M          |  0.02746    |  0.02722
7Y          |  0.04100    |  0.04145
40Y         |  0.04625    |  0.04578
----------------------------------------------------
`

type failingSource struct{ err error }

func (f failingSource) Quotes(context.Context, time.Time) ([]marketdata.TenorQuote, error) {
	return nil, f.err
}

func runDefault(t *testing.T, cfg config.Config) *report.Result {
	t.Helper()
	res, err := report.Run(context.Background(), cfg, marketdata.NewStaticSource(cfg.Quotes), zap.NewNop())
	require.NoError(t, err)
	return res
}

func TestRun_ReferenceTable(t *testing.T) {
	t.Parallel()

	res := runDefault(t, config.Default())

	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, res))
	assert.Equal(t, referenceTable, buf.String())
}

func TestRun_ReferenceRows(t *testing.T) {
	t.Parallel()

	res := runDefault(t, config.Default())
	require.Len(t, res.Rows, 3)

	short, mid, long := res.Rows[0], res.Rows[1], res.Rows[2]
	assert.Equal(t, time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC), short.Maturity)
	assert.InDelta(t, 92.0/365.0, short.Time, 1e-15)

	// Extrapolated below the first knot rather than clamped.
	assert.Less(t, short.Rates[0], 0.03)
	assert.Less(t, short.Rates[1], 0.03)

	assert.Greater(t, mid.Rates[0], 0.0400)
	assert.Less(t, mid.Rates[0], 0.0425)
	assert.GreaterOrEqual(t, mid.Rates[1], 0.0390)
	assert.LessOrEqual(t, mid.Rates[1], 0.0440)

	assert.GreaterOrEqual(t, long.Rates[0], 0.0450)
}

func TestRun_ExtrapolationDisabled(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Extrapolate = false

	res, err := report.Run(context.Background(), cfg, marketdata.NewStaticSource(cfg.Quotes), nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, curve.ErrExtrapolation)
}

func TestRun_InvalidQuotes(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Quotes = []marketdata.TenorQuote{
		{Tenor: utils.MustParsePeriod("1Y"), Rate: 0.03},
		{Tenor: utils.MustParsePeriod("12M"), Rate: 0.031},
		{Tenor: utils.MustParsePeriod("2Y"), Rate: 0.032},
	}

	_, err := report.Run(context.Background(), cfg, marketdata.NewStaticSource(cfg.Quotes), nil)
	assert.ErrorIs(t, err, curve.ErrInvalidInput)
}

func TestRun_TooFewQuotesForCubic(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Quotes = cfg.Quotes[:2]

	_, err := report.Run(context.Background(), cfg, marketdata.NewStaticSource(cfg.Quotes), nil)
	assert.ErrorIs(t, err, curve.ErrInvalidInput)
}

func TestRun_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	_, err := report.Run(context.Background(), config.Default(), failingSource{err: boom}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	res := runDefault(t, config.Default())

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, res))

	var out struct {
		EvaluationDate string `json:"evaluation_date"`
		Compounding    string `json:"compounding"`
		Rows           []struct {
			Maturity string             `json:"maturity"`
			Date     string             `json:"date"`
			Rates    map[string]float64 `json:"rates"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "2025-08-24", out.EvaluationDate)
	assert.Equal(t, "continuous", out.Compounding)
	require.Len(t, out.Rows, 3)
	assert.Equal(t, "7Y", out.Rows[1].Maturity)
	assert.Equal(t, "2032-08-24", out.Rows[1].Date)
	assert.InDelta(t, res.Rows[1].Rates[1], out.Rows[1].Rates["cubic"], 1e-15)
}

func TestOpenSource(t *testing.T) {
	t.Parallel()

	src, closeFn, err := report.OpenSource(config.Default(), nil)
	require.NoError(t, err)
	require.NoError(t, closeFn())
	quotes, err := src.Quotes(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Len(t, quotes, 6)

	cfg := config.Default()
	cfg.Source.Kind = "redis"
	_, _, err = report.OpenSource(cfg, nil)
	assert.Error(t, err)
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid input", report.ErrorKind(curve.ErrInvalidInput))
	assert.Equal(t, "extrapolation error", report.ErrorKind(errors.Join(errors.New("ctx"), curve.ErrExtrapolation)))
	assert.Equal(t, "unknown error", report.ErrorKind(errors.New("disk full")))
}

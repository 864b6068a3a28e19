// Package report runs the interpolation comparison and renders its result.
package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/meenmo/yieldcurve/calendar"
	"github.com/meenmo/yieldcurve/config"
	"github.com/meenmo/yieldcurve/curve"
	"github.com/meenmo/yieldcurve/marketdata"
	"github.com/meenmo/yieldcurve/utils"
)

// Row is one reported maturity. Rates is aligned with Result.Methods.
type Row struct {
	Tenor    utils.Period
	Maturity time.Time
	Time     float64
	Rates    []float64
}

// Result is a complete comparison; it is only produced when every query
// succeeded.
type Result struct {
	EvaluationDate time.Time
	Methods        []curve.Method
	Compounding    curve.Compounding
	Rows           []Row
}

// Run loads quotes from src, builds one curve per configured method over the
// same knots and queries every test tenor.
func Run(ctx context.Context, cfg config.Config, src marketdata.QuoteSource, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tenorQuotes, err := src.Quotes(ctx, cfg.EvaluationDate)
	if err != nil {
		return nil, err
	}
	quotes := marketdata.ToMarketQuotes(cfg.EvaluationDate, tenorQuotes, cfg.Calendar, cfg.Convention)

	store, err := curve.NewStore(cfg.EvaluationDate, quotes, cfg.DayCount)
	if err != nil {
		return nil, err
	}
	logger.Debug("curve store built",
		zap.Time("evaluation_date", cfg.EvaluationDate),
		zap.String("day_count", string(cfg.DayCount)),
		zap.Int("points", len(quotes)),
	)

	curves := make([]*curve.InterpolatedCurve, 0, len(cfg.Methods))
	for _, m := range cfg.Methods {
		c, err := curve.NewFromStore(store, m, cfg.Extrapolate)
		if err != nil {
			return nil, fmt.Errorf("build %s curve: %w", m, err)
		}
		curves = append(curves, c)
	}

	res := &Result{
		EvaluationDate: cfg.EvaluationDate,
		Methods:        append([]curve.Method(nil), cfg.Methods...),
		Compounding:    cfg.Compounding,
		Rows:           make([]Row, 0, len(cfg.TestTenors)),
	}
	for _, tenor := range cfg.TestTenors {
		maturity := calendar.Advance(cfg.Calendar, cfg.EvaluationDate, tenor, cfg.Convention)
		t := store.TimeOf(maturity)

		row := Row{Tenor: tenor, Maturity: maturity, Time: t, Rates: make([]float64, len(curves))}
		for i, c := range curves {
			r, err := c.ZeroRate(t, cfg.Compounding)
			if err != nil {
				return nil, fmt.Errorf("%s zero rate at %s: %w", c.Method(), tenor, err)
			}
			row.Rates[i] = r
		}
		logger.Debug("queried maturity", zap.Stringer("tenor", tenor), zap.Float64("t", t), zap.Float64s("rates", row.Rates))
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

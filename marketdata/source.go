// Package marketdata supplies the zero rate quotes a curve is built from.
package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/meenmo/yieldcurve/calendar"
	"github.com/meenmo/yieldcurve/curve"
	"github.com/meenmo/yieldcurve/utils"
)

// TenorQuote is a zero rate quoted for a tenor from the evaluation date.
// Rate is a decimal (0.03 == 3%).
type TenorQuote struct {
	Tenor utils.Period
	Rate  float64
}

// QuoteSource supplies tenor quotes for an evaluation date.
type QuoteSource interface {
	Quotes(ctx context.Context, evaluationDate time.Time) ([]TenorQuote, error)
}

// ToMarketQuotes dates each tenor by advancing it from the evaluation date on
// cal and rolling with conv. Order is preserved.
func ToMarketQuotes(evaluationDate time.Time, quotes []TenorQuote, cal calendar.CalendarID, conv calendar.BusinessDayConvention) []curve.MarketQuote {
	out := make([]curve.MarketQuote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, curve.MarketQuote{
			Maturity: calendar.Advance(cal, evaluationDate, q.Tenor, conv),
			Rate:     q.Rate,
		})
	}
	return out
}

// ParseTenorQuote builds a TenorQuote from a tenor string.
func ParseTenorQuote(tenor string, rate float64) (TenorQuote, error) {
	p, err := utils.ParsePeriod(tenor)
	if err != nil {
		return TenorQuote{}, fmt.Errorf("%w: %v", curve.ErrInvalidInput, err)
	}
	return TenorQuote{Tenor: p, Rate: rate}, nil
}

package marketdata

import (
	"context"
	"time"

	"github.com/meenmo/yieldcurve/utils"
)

// DefaultQuotes is the bundled reference zero curve.
func DefaultQuotes() []TenorQuote {
	return []TenorQuote{
		{Tenor: utils.MustParsePeriod("6M"), Rate: 0.0300},
		{Tenor: utils.MustParsePeriod("1Y"), Rate: 0.0350},
		{Tenor: utils.MustParsePeriod("2Y"), Rate: 0.0375},
		{Tenor: utils.MustParsePeriod("5Y"), Rate: 0.0400},
		{Tenor: utils.MustParsePeriod("10Y"), Rate: 0.0425},
		{Tenor: utils.MustParsePeriod("30Y"), Rate: 0.0450},
	}
}

// StaticSource returns the same quotes for every evaluation date.
type StaticSource struct {
	quotes []TenorQuote
}

// NewStaticSource copies quotes into a static source.
func NewStaticSource(quotes []TenorQuote) *StaticSource {
	cp := make([]TenorQuote, len(quotes))
	copy(cp, quotes)
	return &StaticSource{quotes: cp}
}

// DefaultSource is a static source over DefaultQuotes.
func DefaultSource() *StaticSource {
	return &StaticSource{quotes: DefaultQuotes()}
}

func (s *StaticSource) Quotes(_ context.Context, _ time.Time) ([]TenorQuote, error) {
	out := make([]TenorQuote, len(s.quotes))
	copy(out, s.quotes)
	return out, nil
}

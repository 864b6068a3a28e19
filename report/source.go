package report

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/meenmo/yieldcurve/config"
	"github.com/meenmo/yieldcurve/marketdata"
)

// OpenSource returns the quote source selected by cfg and a function that
// releases it.
func OpenSource(cfg config.Config, logger *zap.Logger) (marketdata.QuoteSource, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch cfg.Source.Kind {
	case config.SourcePostgres:
		src, err := marketdata.OpenPostgres(cfg.Source.DSN, cfg.Source.Table, logger.Named("postgres"))
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	case config.SourceStatic, "":
		return marketdata.NewStaticSource(cfg.Quotes), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown quote source %q", cfg.Source.Kind)
	}
}

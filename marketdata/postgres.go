package marketdata

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/meenmo/yieldcurve/curve"
	"github.com/meenmo/yieldcurve/utils"
)

// DefaultQuoteTable is read when no table is configured. Expected columns:
//
//	id bigserial, curve_date date, tenor text, rate double precision
//
// with rate as a decimal. Rows are returned in id order; the curve store
// rejects tenors that are not increasing.
const DefaultQuoteTable = "zero_quotes"

// PostgresSource reads tenor quotes for a curve date from PostgreSQL.
type PostgresSource struct {
	db     *sql.DB
	query  string
	logger *zap.Logger
}

// OpenPostgres opens a lib/pq connection pool for dsn.
func OpenPostgres(dsn, table string, logger *zap.Logger) (*PostgresSource, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%w: postgres dsn is required", curve.ErrInvalidInput)
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewPostgresSource(db, table, logger), nil
}

// NewPostgresSource wraps an existing pool.
func NewPostgresSource(db *sql.DB, table string, logger *zap.Logger) *PostgresSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresSource{db: db, query: quotesQuery(table), logger: logger}
}

// Close releases the pool.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

// Quotes returns the quotes stored for evaluationDate in insertion order.
func (s *PostgresSource) Quotes(ctx context.Context, evaluationDate time.Time) ([]TenorQuote, error) {
	day := evaluationDate.Format(utils.DateLayout)
	s.logger.Debug("loading quotes", zap.String("curve_date", day))

	rows, err := s.db.QueryContext(ctx, s.query, day)
	if err != nil {
		return nil, fmt.Errorf("query quotes for %s: %w", day, err)
	}
	defer rows.Close()

	var out []TenorQuote
	for rows.Next() {
		var tenor string
		var rate float64
		if err := rows.Scan(&tenor, &rate); err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		q, err := ParseTenorQuote(tenor, rate)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read quote rows: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no quotes stored for %s", curve.ErrInvalidInput, day)
	}

	s.logger.Debug("loaded quotes", zap.Int("count", len(out)))
	return out, nil
}

// quotesQuery quotes each part of a possibly schema-qualified table name.
func quotesQuery(table string) string {
	if strings.TrimSpace(table) == "" {
		table = DefaultQuoteTable
	}
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(strings.TrimSpace(p))
	}
	return "SELECT tenor, rate FROM " + strings.Join(parts, ".") + " WHERE curve_date = $1 ORDER BY id"
}

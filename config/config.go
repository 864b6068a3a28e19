// Package config holds the settings of a curve comparison run.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/yieldcurve/calendar"
	"github.com/meenmo/yieldcurve/curve"
	"github.com/meenmo/yieldcurve/logging"
	"github.com/meenmo/yieldcurve/marketdata"
	"github.com/meenmo/yieldcurve/utils"
)

// Source kinds.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

// Config holds curve construction and report parameters.
// Default reproduces the bundled reference run.
type Config struct {
	// EvaluationDate is the date curve times are measured from.
	EvaluationDate time.Time

	// DayCount converts dates to curve time. ACT/365F unless overridden.
	DayCount utils.DayCount

	// Calendar and Convention date each tenor from the evaluation date.
	Calendar   calendar.CalendarID
	Convention calendar.BusinessDayConvention

	// Extrapolate allows queries outside the quoted maturities.
	Extrapolate bool

	// Compounding of the reported zero rates.
	Compounding curve.Compounding

	// Methods are the interpolation schemes compared, one column each.
	Methods []curve.Method

	// Quotes feed the static source.
	Quotes []marketdata.TenorQuote

	// TestTenors are the maturities reported, one row each.
	TestTenors []utils.Period

	Source SourceConfig
	Log    logging.Options
}

// SourceConfig selects where quotes come from.
type SourceConfig struct {
	Kind string
	// DSN is expanded with os.ExpandEnv so credentials can live in the environment.
	DSN   string
	Table string
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		EvaluationDate: time.Date(2025, time.August, 24, 0, 0, 0, 0, time.UTC),
		DayCount:       utils.Act365F,
		Calendar:       calendar.WeekendsOnly,
		Convention:     calendar.Following,
		Extrapolate:    true,
		Compounding:    curve.Continuous,
		Methods:        []curve.Method{curve.Linear, curve.Cubic},
		Quotes:         marketdata.DefaultQuotes(),
		TestTenors: []utils.Period{
			utils.MustParsePeriod("3M"),
			utils.MustParsePeriod("7Y"),
			utils.MustParsePeriod("40Y"),
		},
		Source: SourceConfig{Kind: SourceStatic, Table: marketdata.DefaultQuoteTable},
		Log:    logging.Options{Level: "warn"},
	}
}

type fileConfig struct {
	EvaluationDate        string       `yaml:"evaluation_date"`
	DayCount              string       `yaml:"day_count"`
	Calendar              string       `yaml:"calendar"`
	BusinessDayConvention string       `yaml:"business_day_convention"`
	Extrapolate           *bool        `yaml:"extrapolate"`
	Compounding           string       `yaml:"compounding"`
	Methods               []string     `yaml:"methods"`
	Quotes                []quoteEntry `yaml:"quotes"`
	TestTenors            []string     `yaml:"test_tenors"`
	Source                *sourceEntry `yaml:"source"`
	Log                   *logEntry    `yaml:"log"`
}

type quoteEntry struct {
	Tenor string `yaml:"tenor"`
	// Rate is a decimal (0.03) or a percent string ("3.00%").
	Rate any `yaml:"rate"`
}

type sourceEntry struct {
	Kind  string `yaml:"kind"`
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

type logEntry struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load reads a YAML file and overlays it on Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML bytes on Default and validates the result.
func Parse(data []byte) (Config, error) {
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: cannot parse YAML: %v", curve.ErrInvalidInput, err)
	}

	cfg := Default()
	if err := raw.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", curve.ErrInvalidInput, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (raw fileConfig) apply(cfg *Config) error {
	var err error
	if raw.EvaluationDate != "" {
		if cfg.EvaluationDate, err = utils.ParseDate(raw.EvaluationDate); err != nil {
			return err
		}
	}
	if raw.DayCount != "" {
		if cfg.DayCount, err = utils.ParseDayCount(raw.DayCount); err != nil {
			return err
		}
	}
	if raw.Calendar != "" {
		if cfg.Calendar, err = calendar.ParseCalendar(raw.Calendar); err != nil {
			return err
		}
	}
	if raw.BusinessDayConvention != "" {
		if cfg.Convention, err = calendar.ParseConvention(raw.BusinessDayConvention); err != nil {
			return err
		}
	}
	if raw.Extrapolate != nil {
		cfg.Extrapolate = *raw.Extrapolate
	}
	if raw.Compounding != "" {
		if cfg.Compounding, err = curve.ParseCompounding(raw.Compounding); err != nil {
			return err
		}
	}
	if len(raw.Methods) > 0 {
		cfg.Methods = make([]curve.Method, 0, len(raw.Methods))
		for _, s := range raw.Methods {
			m, err := curve.ParseMethod(s)
			if err != nil {
				return err
			}
			cfg.Methods = append(cfg.Methods, m)
		}
	}
	if len(raw.Quotes) > 0 {
		cfg.Quotes = make([]marketdata.TenorQuote, 0, len(raw.Quotes))
		for i, q := range raw.Quotes {
			rate, err := ParseRate(q.Rate)
			if err != nil {
				return fmt.Errorf("quote %d (%s): %w", i, q.Tenor, err)
			}
			tq, err := marketdata.ParseTenorQuote(q.Tenor, rate)
			if err != nil {
				return fmt.Errorf("quote %d: %w", i, err)
			}
			cfg.Quotes = append(cfg.Quotes, tq)
		}
	}
	if len(raw.TestTenors) > 0 {
		cfg.TestTenors = make([]utils.Period, 0, len(raw.TestTenors))
		for _, s := range raw.TestTenors {
			p, err := utils.ParsePeriod(s)
			if err != nil {
				return err
			}
			cfg.TestTenors = append(cfg.TestTenors, p)
		}
	}
	if raw.Source != nil {
		if raw.Source.Kind != "" {
			cfg.Source.Kind = strings.ToLower(strings.TrimSpace(raw.Source.Kind))
		}
		if raw.Source.DSN != "" {
			cfg.Source.DSN = os.ExpandEnv(raw.Source.DSN)
		}
		if raw.Source.Table != "" {
			cfg.Source.Table = raw.Source.Table
		}
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			cfg.Log.Level = raw.Log.Level
		}
		cfg.Log.File = raw.Log.File
		cfg.Log.MaxSizeMB = raw.Log.MaxSizeMB
		cfg.Log.MaxBackups = raw.Log.MaxBackups
		cfg.Log.MaxAgeDays = raw.Log.MaxAgeDays
	}
	return nil
}

// ParseRate accepts a decimal number or a percent string such as "3.25%".
func ParseRate(v any) (float64, error) {
	switch r := v.(type) {
	case nil:
		return 0, fmt.Errorf("missing rate")
	case string:
		s := strings.TrimSpace(r)
		scale := 1.0
		if strings.HasSuffix(s, "%") {
			s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
			scale = 100
		}
		rate, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, fmt.Errorf("invalid rate %q", r)
		}
		return rate / scale, nil
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		rate, err := cast.ToFloat64E(r)
		if err != nil {
			return 0, fmt.Errorf("invalid rate %v", r)
		}
		return rate, nil
	default:
		// cast turns bools into 0 or 1, which would read as 0% or 100%.
		return 0, fmt.Errorf("invalid rate %v of type %T", v, v)
	}
}

// Validate checks the settings a run depends on.
func (c Config) Validate() error {
	if c.EvaluationDate.IsZero() {
		return fmt.Errorf("%w: evaluation date is required", curve.ErrInvalidInput)
	}
	if len(c.Methods) == 0 {
		return fmt.Errorf("%w: at least one interpolation method is required", curve.ErrInvalidInput)
	}
	seen := make(map[curve.Method]bool, len(c.Methods))
	for _, m := range c.Methods {
		if seen[m] {
			return fmt.Errorf("%w: duplicate interpolation method %s", curve.ErrInvalidInput, m)
		}
		seen[m] = true
	}
	if len(c.TestTenors) == 0 {
		return fmt.Errorf("%w: at least one test tenor is required", curve.ErrInvalidInput)
	}
	switch c.Source.Kind {
	case SourceStatic:
		if len(c.Quotes) == 0 {
			return fmt.Errorf("%w: static source needs quotes", curve.ErrInvalidInput)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.Source.DSN) == "" {
			return fmt.Errorf("%w: postgres source needs a dsn", curve.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown quote source %q", curve.ErrInvalidInput, c.Source.Kind)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", curve.ErrInvalidInput, err)
	}
	return nil
}

package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodUnit is the time unit of a Period.
type PeriodUnit byte

const (
	UnitDays   PeriodUnit = 'D'
	UnitWeeks  PeriodUnit = 'W'
	UnitMonths PeriodUnit = 'M'
	UnitYears  PeriodUnit = 'Y'
)

// Period is a tenor such as 3M or 10Y.
type Period struct {
	N    int
	Unit PeriodUnit
}

// ParsePeriod converts tenor strings like "1W", "3M", "10Y" to a Period.
func ParsePeriod(tenor string) (Period, error) {
	s := strings.TrimSpace(strings.ToUpper(tenor))
	if len(s) < 2 {
		return Period{}, fmt.Errorf("invalid tenor %q", tenor)
	}
	unit := PeriodUnit(s[len(s)-1])
	switch unit {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
	default:
		return Period{}, fmt.Errorf("invalid tenor unit in %q", tenor)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Period{}, fmt.Errorf("invalid tenor %q: %w", tenor, err)
	}
	if n < 0 {
		return Period{}, fmt.Errorf("negative tenor %q", tenor)
	}
	return Period{N: n, Unit: unit}, nil
}

// MustParsePeriod is ParsePeriod for compiled-in tenors.
func MustParsePeriod(tenor string) Period {
	p, err := ParsePeriod(tenor)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Period) String() string {
	return strconv.Itoa(p.N) + string(rune(p.Unit))
}

// Years returns the nominal length of p in years (3M -> 0.25).
func (p Period) Years() float64 {
	switch p.Unit {
	case UnitDays:
		return float64(p.N) / 365.0
	case UnitWeeks:
		return float64(p.N) * 7.0 / 365.0
	case UnitMonths:
		return float64(p.N) / 12.0
	default:
		return float64(p.N)
	}
}

// AddTo advances t by p without business-day adjustment. Months and years
// follow EDATE, so Jan 31 + 1M is the last day of February.
func (p Period) AddTo(t time.Time) time.Time {
	switch p.Unit {
	case UnitDays:
		return t.AddDate(0, 0, p.N)
	case UnitWeeks:
		return t.AddDate(0, 0, 7*p.N)
	case UnitMonths:
		return AddMonth(t, p.N)
	default:
		return AddMonth(t, 12*p.N)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(b []byte) error {
	parsed, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

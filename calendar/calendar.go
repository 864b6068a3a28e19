package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/meenmo/yieldcurve/utils"
)

// CalendarID identifies a business day calendar.
type CalendarID string

const (
	// WeekendsOnly treats Saturday and Sunday as the only non-business days.
	WeekendsOnly CalendarID = "WEEKENDS"
	// Null treats every day as a business day.
	Null CalendarID = "NULL"
)

// BusinessDayConvention selects how a non-business day is rolled.
type BusinessDayConvention string

const (
	Unadjusted        BusinessDayConvention = "UNADJUSTED"
	Following         BusinessDayConvention = "FOLLOWING"
	ModifiedFollowing BusinessDayConvention = "MODIFIED_FOLLOWING"
)

// ParseCalendar normalizes a calendar name. TARGET is accepted as a
// weekends-only calendar since holiday tables are not carried.
func ParseCalendar(s string) (CalendarID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WEEKENDS", "WEEKENDSONLY", "TARGET":
		return WeekendsOnly, nil
	case "NULL", "NONE":
		return Null, nil
	default:
		return "", fmt.Errorf("unsupported calendar %q", s)
	}
}

// ParseConvention normalizes a business day convention name.
func ParseConvention(s string) (BusinessDayConvention, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")) {
	case "UNADJUSTED", "NONE":
		return Unadjusted, nil
	case "FOLLOWING", "F":
		return Following, nil
	case "MODIFIED_FOLLOWING", "MODIFIEDFOLLOWING", "MF":
		return ModifiedFollowing, nil
	default:
		return "", fmt.Errorf("unsupported business day convention %q", s)
	}
}

// IsBusinessDay checks weekends under the given calendar.
func IsBusinessDay(cal CalendarID, t time.Time) bool {
	if cal == Null {
		return true
	}
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// Adjust rolls t onto a business day using conv.
func Adjust(cal CalendarID, t time.Time, conv BusinessDayConvention) time.Time {
	switch conv {
	case Following:
		return AdjustFollowing(cal, t)
	case ModifiedFollowing:
		return AdjustModifiedFollowing(cal, t)
	default:
		return t
	}
}

// AdjustModifiedFollowing applies Modified Following.
func AdjustModifiedFollowing(cal CalendarID, t time.Time) time.Time {
	origMonth := t.Month()
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !IsBusinessDay(cal, t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AdjustFollowing applies a simple Following convention (no month preservation).
func AdjustFollowing(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(cal CalendarID, t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// Advance moves t forward by p and rolls the result with conv. Day tenors
// count business days, matching the usual calendar advance rule.
func Advance(cal CalendarID, t time.Time, p utils.Period, conv BusinessDayConvention) time.Time {
	if p.Unit == utils.UnitDays {
		if p.N == 0 {
			return Adjust(cal, t, conv)
		}
		return AddBusinessDays(cal, t, p.N)
	}
	return Adjust(cal, p.AddTo(t), conv)
}

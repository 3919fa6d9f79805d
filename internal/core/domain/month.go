package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
)

// MonthLayout is the time layout of a year-month token.
const MonthLayout = "2006-01"

var monthTokenPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month is a calendar month in UTC, rendered as "YYYY-MM".
type Month struct {
	Year  int
	Month time.Month
}

// IsMonthToken reports whether s is a well formed "YYYY-MM" token for a real month.
func IsMonthToken(s string) bool {
	_, err := ParseMonth(s)
	return err == nil
}

// ParseMonth parses a "YYYY-MM" token.
func ParseMonth(s string) (Month, error) {
	if !monthTokenPattern.MatchString(s) {
		return Month{}, apperrors.NewValidationError("month %q must be in YYYY-MM format", s)
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	if month < 1 || month > 12 {
		return Month{}, apperrors.NewValidationError("month %q is out of range", s)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the UTC calendar month containing t.
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start is the first instant of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return MonthOf(m.Start().AddDate(0, 1, 0))
}

// End is the last instant of the month, inclusive.
func (m Month) End() time.Time {
	return m.Next().Start().Add(-time.Nanosecond)
}

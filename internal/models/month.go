package models

import (
	"fmt"
	"time"
)

// MonthLayout is the wire format for target months (YYYY-MM).
const MonthLayout = "2006-01"

// Month identifies one calendar month (year plus month).
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM string into a Month.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the calendar month a date falls in.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether a date falls within the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// After reports whether m is a later calendar month than other.
func (m Month) After(other Month) bool {
	if m.Year != other.Year {
		return m.Year > other.Year
	}
	return m.Month > other.Month
}

// String formats the month as YYYY-MM, the tag used in artifact names.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

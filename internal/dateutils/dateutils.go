// Package dateutils provides common date operations used throughout the
// application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutUS       = "01/02/2006"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is the list of formats tried when parsing dates from
// bank exports. US month-first layouts come before day-first ones since
// that is the dominant convention in the exports this tool targets.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutUS,
	"1/2/2006",
	"01-02-2006",
	DateLayoutEuropean,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"02 Jan 2006",
	"2006-01-02T15:04:05Z",
}

var spaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and normalizes whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spaceRe.ReplaceAllString(dateStr, " ")
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the format that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// Package calendar converts between YYYY-MM-DD text and calendar days.
//
// A calendar day is a time.Time at UTC midnight. All formatting reads UTC
// fields only, so the server's local timezone never leaks into a day.
// Today is derived from the UTC wall clock; a user checking in near their
// local midnight may land on the neighbouring UTC day.
package calendar

import (
	"regexp"
	"strconv"
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// Layout is the external text form of a calendar day.
const Layout = "2006-01-02"

var dayPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Parse converts YYYY-MM-DD text into a calendar day.
// Malformed text yields ErrInvalidDateFormat; a well-formed but impossible
// date (2023-02-29, 2024-13-01) yields ErrInvalidCalendarDate.
func Parse(text string) (time.Time, error) {
	m := dayPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, &domain.DateError{Input: text, Kind: domain.ErrInvalidDateFormat}
	}

	// The pattern guarantees digits, Atoi cannot fail.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, &domain.DateError{Input: text, Kind: domain.ErrInvalidCalendarDate}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Format renders the UTC date of t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Key returns a sortable, comparable key for the day containing t.
func Key(t time.Time) string {
	return Format(t)
}

// Truncate returns the calendar day containing t, using UTC fields.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar day of now.
func Today(now time.Time) time.Time {
	return Truncate(now)
}

// AddDays offsets a day by n calendar days (n may be negative).
func AddDays(day time.Time, n int) time.Time {
	return Truncate(day).AddDate(0, 0, n)
}

// MonthStart returns the first day of the month containing day.
func MonthStart(day time.Time) time.Time {
	u := day.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// IsCanonical reports whether t is exactly a UTC-midnight instant.
func IsCanonical(t time.Time) bool {
	return t.Location() == time.UTC && t.Equal(Truncate(t))
}

func daysIn(m time.Month, year int) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

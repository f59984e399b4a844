package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

var dateOnlyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDateOnly parses a YYYY-MM-DD string into a date at local midnight.
// Malformed calendar dates (day 31 in a 30-day month) are rejected instead of
// being normalized: the constructed date has to round-trip to the same
// year/month/day.
func ParseDateOnly(value string) (time.Time, bool) {
	match := dateOnlyPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}

	return date, true
}

// FormatDateOnly renders a date as YYYY-MM-DD.
func FormatDateOnly(date time.Time) string {
	return date.Format(dateOnlyLayout)
}

// TodayString returns today's date as YYYY-MM-DD.
func TodayString() string {
	return FormatDateOnly(Today())
}

package validation

import "time"

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

// Today returns the current date at local midnight. Every forward-looking
// date in the wizard is bounded below by this value.
func Today() time.Time {
	now := CurrentTimeFunc()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// AddDays shifts a date by n calendar days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

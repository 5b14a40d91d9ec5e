package util

import (
	"regexp"
	"time"
)

var monthFormat = regexp.MustCompile(`^\d{4}-\d{2}$`)

func ValidateMonthFormat(month string) bool {
	return monthFormat.MatchString(month)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 timestamps.
func ParseDate(value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DateNotInFuture checks the date against end-of-day today, so a transaction
// dated later today is still valid.
func DateNotInFuture(date, now time.Time) bool {
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return !date.After(endOfToday)
}

func ValidateDescription(description string) bool {
	return len(description) > 0 && len(description) <= 200
}

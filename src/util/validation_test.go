package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateMonthFormat(t *testing.T) {
	assert.True(t, ValidateMonthFormat("2024-01"))
	assert.True(t, ValidateMonthFormat("1999-12"))
	assert.False(t, ValidateMonthFormat("2024-1"))
	assert.False(t, ValidateMonthFormat("2024/01"))
	assert.False(t, ValidateMonthFormat("January 2024"))
	assert.False(t, ValidateMonthFormat(""))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())

	_, ok = ParseDate("2024-01-15T10:30:00Z")
	assert.True(t, ok)

	_, ok = ParseDate("15/01/2024")
	assert.False(t, ok)
	_, ok = ParseDate("not a date")
	assert.False(t, ok)
}

func TestDateNotInFuture(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	// Later today still passes; tomorrow does not.
	assert.True(t, DateNotInFuture(time.Date(2024, time.June, 15, 22, 0, 0, 0, time.UTC), now))
	assert.True(t, DateNotInFuture(time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, DateNotInFuture(time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestValidateDescription(t *testing.T) {
	assert.True(t, ValidateDescription("Groceries"))
	assert.True(t, ValidateDescription(strings.Repeat("a", 200)))
	assert.False(t, ValidateDescription(""))
	assert.False(t, ValidateDescription(strings.Repeat("a", 201)))
}

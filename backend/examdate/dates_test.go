package examdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)

func TestParseExact(t *testing.T) {
	parsed := parseIn("25-12-2025", time.UTC)
	assert.Equal(t, Exact, parsed.Kind)
	assert.Equal(t, time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), parsed.Time)
}

func TestParseExactNormalizesOverflow(t *testing.T) {
	// Out-of-range components roll forward, matching how stored values have
	// always been read at display time.
	parsed := parseIn("31-02-2025", time.UTC)
	assert.Equal(t, Exact, parsed.Kind)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), parsed.Time)
}

func TestParseLegacy(t *testing.T) {
	june := parseIn("June 2026", time.UTC)
	assert.Equal(t, LegacyApprox, june.Kind)
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), june.Time)

	// Every other month name reads as December 1 of that year.
	for _, value := range []string{"December 2026", "March 2026", "Sometime 2026"} {
		parsed := parseIn(value, time.UTC)
		assert.Equal(t, LegacyApprox, parsed.Kind, value)
		assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), parsed.Time, value)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, value := range []string{"", "   ", "June", "June abc", "garbage"} {
		assert.Equal(t, Invalid, Parse(value).Kind, value)
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate("", now), ErrEmptyDate)
	assert.ErrorIs(t, Validate("2025-12-25", now), ErrBadFormat)
	assert.ErrorIs(t, Validate("June 2026", now), ErrBadFormat)
	assert.ErrorIs(t, Validate("5-1-2026", now), ErrBadFormat)
	assert.ErrorIs(t, Validate("31-02-2026", now), ErrNotCalendarDate)
	assert.ErrorIs(t, Validate("14-12-2025", now), ErrPastDate)

	assert.NoError(t, Validate("25-12-2025", now))
	assert.NoError(t, Validate("15-12-2025", now), "today is not in the past")
	assert.NoError(t, Validate("29-02-2028", now), "leap day is a real date")
}

func TestUntilExact(t *testing.T) {
	assert.Equal(t, Countdown{Months: 0, Days: 10}, Until("25-12-2025", now))
	assert.Equal(t, Countdown{Months: 1, Days: 15}, Until("29-01-2026", now))
}

func TestUntilLegacy(t *testing.T) {
	// 2025-12-15 to 2026-06-01 is 168 days: 5 flat months and 18 days.
	assert.Equal(t, Countdown{Months: 5, Days: 18}, Until("June 2026", now))

	// Past legacy dates read as zero.
	assert.Equal(t, Countdown{}, Until("June 2024", now))
}

func TestUntilLenientOnBadInput(t *testing.T) {
	assert.Equal(t, Countdown{}, Until("", now))
	assert.Equal(t, Countdown{}, Until("garbage", now))
	assert.Equal(t, Countdown{}, Until("01-01-2020", now))
}

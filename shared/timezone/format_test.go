package timezone_test

import (
	"testing"
	"time"

	"travelclock/shared/failure"
	"travelclock/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	dt := time.Date(2025, 3, 19, 14, 30, 0, 123456789, time.UTC)

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "date only", pattern: "%Y-%m-%d", want: "2025-03-19"},
		{name: "empty pattern", pattern: "", want: ""},
		{name: "literal text", pattern: "departure", want: "departure"},
		{name: "utc display", pattern: "%Y-%m-%d %H:%M:%S %Z", want: "2025-03-19 14:30:00 UTC"},
		{name: "us display", pattern: "%B %d, %Y %I:%M %p %Z", want: "March 19, 2025 02:30 PM UTC"},
		{name: "long display", pattern: "%A, %B %d, %Y at %H:%M:%S %Z", want: "Wednesday, March 19, 2025 at 14:30:00 UTC"},
		{name: "percent escape", pattern: "100%%", want: "100%"},
		{name: "milliseconds", pattern: "%S.%L", want: "00.123"},
		{name: "microseconds", pattern: "%S.%f", want: "00.123456"},
		{name: "unix seconds", pattern: "%s", want: "1742394600"},
		{name: "locale date and time", pattern: "%c", want: "Wed Mar 19 14:30:00 2025"},
		{name: "locale date", pattern: "%x", want: "03/19/25"},
		{name: "locale time", pattern: "%X", want: "14:30:00"},
		{name: "numeric offset", pattern: "%z", want: "+0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.Format(dt, tt.pattern)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ZoneAbbreviation(t *testing.T) {
	dt := time.Date(2025, 3, 19, 14, 30, 0, 0, time.UTC)

	tokyo, err := timezone.Convert(dt, "Asia/Tokyo")
	require.NoError(t, err)

	got, err := timezone.Format(tokyo, "%d %B %Y %H:%M %Z")
	require.NoError(t, err)
	assert.Equal(t, "19 March 2025 23:30 JST", got)
}

func TestFormat_Rejections(t *testing.T) {
	dt := time.Date(2025, 3, 19, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		instant time.Time
		pattern any
		reason  failure.Reason
	}{
		{name: "zero instant", instant: time.Time{}, pattern: "%Y-%m-%d", reason: failure.ReasonInvalidInstant},
		{name: "numeric pattern", instant: dt, pattern: 123, reason: failure.ReasonTypeMismatch},
		{name: "nil pattern", instant: dt, pattern: nil, reason: failure.ReasonTypeMismatch},
		{name: "unknown directive", instant: dt, pattern: "%Y-%Q", reason: failure.ReasonFormatFailure},
		{name: "stray percent", instant: dt, pattern: "%Y-%", reason: failure.ReasonFormatFailure},
		{name: "no-padding flag", instant: dt, pattern: "%-d", reason: failure.ReasonFormatFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.FormatValue(tt.instant, tt.pattern)

			require.Error(t, err)
			assert.Empty(t, got)
			assert.Equal(t, tt.reason, failure.ReasonOf(err))
		})
	}
}

func TestValidPattern(t *testing.T) {
	assert.True(t, timezone.ValidPattern(""))
	assert.True(t, timezone.ValidPattern("%d %B %Y"))
	assert.False(t, timezone.ValidPattern("%Q"))
}

package timezone_test

import (
	"testing"
	"time"

	"travelclock/shared/failure"
	"travelclock/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	winter = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	summer = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
)

func TestDifferenceAt(t *testing.T) {
	tests := []struct {
		name  string
		at    time.Time
		zone1 string
		zone2 string
		want  timezone.Offset
	}{
		{name: "same zone", at: winter, zone1: "UTC", zone2: "UTC", want: timezone.Offset{}},
		{name: "new york to tokyo in winter", at: winter, zone1: "America/New_York", zone2: "Asia/Tokyo", want: timezone.Offset{Hours: 14}},
		{name: "new york to tokyo in summer", at: summer, zone1: "America/New_York", zone2: "Asia/Tokyo", want: timezone.Offset{Hours: 13}},
		{name: "dst zone to non-dst zone in winter", at: winter, zone1: "America/New_York", zone2: "America/Phoenix", want: timezone.Offset{Hours: -2}},
		{name: "dst zone to non-dst zone in summer", at: summer, zone1: "America/New_York", zone2: "America/Phoenix", want: timezone.Offset{Hours: -3}},
		{name: "half hour ahead", at: winter, zone1: "UTC", zone2: "Asia/Kolkata", want: timezone.Offset{Hours: 5, Minutes: 30}},
		{name: "half hour behind floors the hours", at: winter, zone1: "Asia/Kolkata", zone2: "UTC", want: timezone.Offset{Hours: -6, Minutes: 30}},
		{name: "quarter hour", at: winter, zone1: "UTC", zone2: "Asia/Kathmandu", want: timezone.Offset{Hours: 5, Minutes: 45}},
		{name: "extreme west to extreme east", at: winter, zone1: "Etc/GMT+12", zone2: "Pacific/Kiritimati", want: timezone.Offset{Hours: 26}},
		{name: "extreme east to extreme west", at: winter, zone1: "Pacific/Kiritimati", zone2: "Etc/GMT+12", want: timezone.Offset{Hours: -26}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.DifferenceAt(tt.at, tt.zone1, tt.zone2)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDifference_SelfIsZero(t *testing.T) {
	for _, zone := range []string{"UTC", "America/New_York", "Asia/Kolkata", "Pacific/Chatham", "Etc/GMT+12"} {
		t.Run(zone, func(t *testing.T) {
			got, err := timezone.Difference(zone, zone)
			require.NoError(t, err)

			assert.Equal(t, timezone.Offset{Hours: 0, Minutes: 0}, got)
		})
	}
}

func TestDifference_Symmetry(t *testing.T) {
	zones := []string{"UTC", "America/New_York", "America/St_Johns", "Asia/Kolkata", "Asia/Kathmandu", "Pacific/Chatham", "Australia/Adelaide"}

	for _, at := range []time.Time{winter, summer} {
		for _, a := range zones {
			for _, b := range zones {
				ab, err := timezone.DifferenceAt(at, a, b)
				require.NoError(t, err)

				ba, err := timezone.DifferenceAt(at, b, a)
				require.NoError(t, err)

				assert.Equal(t, ab.TotalMinutes(), -ba.TotalMinutes(), "%s vs %s at %s", a, b, at)
				assert.GreaterOrEqual(t, ab.Minutes, 0)
				assert.Less(t, ab.Minutes, 60)
			}
		}
	}
}

func TestDifference_NewYorkTokyo(t *testing.T) {
	got, err := timezone.Difference("America/New_York", "Asia/Tokyo")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, got.Hours, 13)
	assert.LessOrEqual(t, got.Hours, 14)
}

func TestKeeper_DifferenceUsesClock(t *testing.T) {
	k := timezone.New(timezone.FixedClock{At: winter}, "UTC")

	got, err := k.Difference("America/New_York", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, timezone.Offset{Hours: 14}, got)
}

func TestDifference_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		zone1  any
		zone2  any
		reason failure.Reason
	}{
		{name: "unknown first zone", zone1: "Invalid/Zone", zone2: "UTC", reason: failure.ReasonUnknownZone},
		{name: "unknown second zone", zone1: "UTC", zone2: "Invalid/Zone", reason: failure.ReasonUnknownZone},
		{name: "numeric first zone", zone1: 123, zone2: "UTC", reason: failure.ReasonTypeMismatch},
		{name: "numeric second zone", zone1: "UTC", zone2: 123, reason: failure.ReasonTypeMismatch},
		{name: "nil zone", zone1: nil, zone2: "UTC", reason: failure.ReasonTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.DifferenceValues(tt.zone1, tt.zone2)

			require.Error(t, err)
			assert.Equal(t, timezone.Offset{}, got)
			assert.Equal(t, tt.reason, failure.ReasonOf(err))
		})
	}

	_, err := timezone.DifferenceAt(time.Time{}, "UTC", "UTC")
	assert.True(t, failure.IsReason(err, failure.ReasonInvalidInstant))
}

func TestOffsetFromSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    timezone.Offset
	}{
		{seconds: 0, want: timezone.Offset{}},
		{seconds: 5400, want: timezone.Offset{Hours: 1, Minutes: 30}},
		{seconds: -5400, want: timezone.Offset{Hours: -2, Minutes: 30}},
		{seconds: -3600, want: timezone.Offset{Hours: -1}},
		{seconds: 119, want: timezone.Offset{Minutes: 1}},
		{seconds: -59, want: timezone.Offset{}},
		{seconds: -61, want: timezone.Offset{Hours: -1, Minutes: 59}},
	}

	for _, tt := range tests {
		got := timezone.OffsetFromSeconds(tt.seconds)

		assert.Equal(t, tt.want, got, "seconds=%d", tt.seconds)
	}
}

func TestOffset_String(t *testing.T) {
	assert.Equal(t, "+13h 0m", timezone.Offset{Hours: 13}.String())
	assert.Equal(t, "+0h 0m", timezone.Offset{}.String())
	assert.Equal(t, "-2h 30m", timezone.Offset{Hours: -2, Minutes: 30}.String())
	assert.Equal(t, -90, timezone.Offset{Hours: -2, Minutes: 30}.TotalMinutes())
}

// Package timezone provides the timezone-aware timestamp operations used by
// the travel planner.
//
// Usage Examples:
//
//  1. Current time:
//     utc := timezone.NowUTC()                         // always in time.UTC
//     tokyo, err := timezone.NowIn("Asia/Tokyo")       // same instant, Tokyo wall clock
//
//  2. Converting an instant to another zone:
//     local, err := timezone.Convert(utc, "Pacific/Kiritimati")
//
//  3. Formatting with strftime directives:
//     s, err := timezone.Format(local, "%B %d, %Y %I:%M %p %Z")
//
//  4. Offset between two zones right now:
//     diff, err := timezone.Difference("America/New_York", "Asia/Tokyo") // {Hours: 13|14}
//
//  5. Deterministic clocks for tests:
//     k := timezone.New(timezone.FixedClock{At: someInstant}, "Europe/London")
//
// Supported timezone formats:
// - Standard IANA names only: "UTC", "Asia/Jakarta", "America/New_York", "Etc/GMT+12".
// - "" and "Local" are rejected.
//
// Every failure is returned as a *failure.Failure tagged with one of
// failure.ReasonTypeMismatch, failure.ReasonUnknownZone,
// failure.ReasonInvalidInstant or failure.ReasonFormatFailure. The tz database
// is embedded in the binary so lookups never depend on the host.
package timezone

package transit

import (
	"strconv"
	"strings"
	"time"
)

// MBTA and MTA feeds both serve the US Eastern time zone; clock strings in
// footers are formatted against it so the board matches station signage.
var easternTime, _ = time.LoadLocation("America/New_York")

// parseISO accepts RFC 3339 timestamps, tolerating a bare "Z" suffix as well
// as numeric offsets.
func parseISO(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MinutesUntil computes whole minutes from now until the given ISO timestamp.
// Returns nil when the timestamp cannot be parsed; negative deltas clamp to 0.
func MinutesUntil(arrivalTime string, now time.Time) *int {
	t, ok := parseISO(arrivalTime)
	if !ok {
		return nil
	}
	mins := int(t.Sub(now).Minutes())
	if mins < 0 {
		mins = 0
	}
	return &mins
}

// MinutesUntilEpoch computes whole minutes from now until an epoch-seconds
// value, which providers serve as either a number or a quoted string.
func MinutesUntilEpoch(epoch string, now time.Time) *int {
	epoch = strings.TrimSpace(epoch)
	if epoch == "" {
		return nil
	}
	ts, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return nil
	}
	mins := int(time.Unix(ts, 0).Sub(now).Minutes())
	if mins < 0 {
		mins = 0
	}
	return &mins
}

// EpochToISO converts epoch seconds to a UTC ISO-8601 timestamp.
// Returns "" when the value does not parse; callers keep the record and
// degrade sort/format quality rather than dropping ridership data.
func EpochToISO(epoch string) string {
	epoch = strings.TrimSpace(epoch)
	if epoch == "" {
		return ""
	}
	ts, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}

// FormatClock renders an ISO timestamp as a local 12-hour clock string for
// footers. Unparseable input falls through to the raw string.
func FormatClock(arrivalTime string) string {
	if arrivalTime == "" {
		return "Unknown"
	}
	t, ok := parseISO(arrivalTime)
	if !ok {
		return arrivalTime
	}
	if easternTime != nil {
		t = t.In(easternTime)
	}
	return t.Format("03:04 PM")
}

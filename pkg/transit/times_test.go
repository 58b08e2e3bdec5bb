package transit

import (
	"fmt"
	"testing"
	"time"
)

func TestMinutesUntil(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	future := now.Add(5 * time.Minute).Format(time.RFC3339)
	mins := MinutesUntil(future, now)
	if mins == nil || *mins != 5 {
		t.Fatalf("expected 5 minutes for a +5m timestamp, got %v", mins)
	}

	// A vehicle that should already have arrived clamps to 0, never negative
	past := now.Add(-10 * time.Minute).Format(time.RFC3339)
	mins = MinutesUntil(past, now)
	if mins == nil || *mins != 0 {
		t.Fatalf("expected past arrival to clamp to 0, got %v", mins)
	}

	if MinutesUntil("not-a-timestamp", now) != nil {
		t.Errorf("expected nil minutes for unparseable timestamp")
	}
	if MinutesUntil("", now) != nil {
		t.Errorf("expected nil minutes for empty timestamp")
	}
}

func TestMinutesUntilEpoch(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	soon := fmt.Sprintf("%d", now.Add(300*time.Second).Unix())
	mins := MinutesUntilEpoch(soon, now)
	if mins == nil || *mins != 5 {
		t.Fatalf("expected 5 minutes for epoch now+300, got %v", mins)
	}

	past := fmt.Sprintf("%d", now.Add(-2*time.Minute).Unix())
	mins = MinutesUntilEpoch(past, now)
	if mins == nil || *mins != 0 {
		t.Fatalf("expected negative epoch delta to clamp to 0, got %v", mins)
	}

	if MinutesUntilEpoch("garbage", now) != nil {
		t.Errorf("expected nil minutes for a non-numeric epoch")
	}
}

func TestEpochToISO(t *testing.T) {
	iso := EpochToISO("1767225600")
	if iso == "" {
		t.Fatal("expected a timestamp for a valid epoch")
	}
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		t.Fatalf("EpochToISO output is not RFC 3339: %v", err)
	}
	if parsed.Unix() != 1767225600 {
		t.Errorf("round trip drifted: %d", parsed.Unix())
	}

	if EpochToISO("soon™") != "" {
		t.Errorf("expected empty ISO for a bad epoch")
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(""); got != "Unknown" {
		t.Errorf("expected Unknown for empty time, got %q", got)
	}
	// Unparseable input falls through to the raw string, not an error
	if got := FormatClock("later today"); got != "later today" {
		t.Errorf("expected raw passthrough, got %q", got)
	}
	if got := FormatClock("2026-03-04T17:00:00Z"); got == "" || got == "2026-03-04T17:00:00Z" {
		t.Errorf("expected a formatted clock string, got %q", got)
	}
}

package transit

import (
	"fmt"
	"testing"
	"time"
)

func TestParseStopTimes_Envelope(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	epoch := now.Add(5 * time.Minute).Unix()

	payload := []byte(fmt.Sprintf(`{
		"stops": [
			{"stopTimes": [
				{"arrival": {"time": %d},
				 "trip": {"route": {"id": "G"}, "destination": {"name": "Church Av"}},
				 "directionId": true,
				 "future": true,
				 "track": "A1"}
			]}
		]
	}`, epoch))

	records := ParseStopTimes(payload, "Nassau Av", 10, now)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.RouteShortName != "G" {
		t.Errorf("expected route G, got %s", rec.RouteShortName)
	}
	if rec.Destination != "Church Av" {
		t.Errorf("expected destination Church Av, got %s", rec.Destination)
	}
	if rec.Minutes == nil || *rec.Minutes != 5 {
		t.Errorf("expected 5 minutes, got %v", rec.Minutes)
	}
	if rec.ArrivalTime == "" {
		t.Error("expected ISO arrival time from epoch")
	}
	if rec.DirectionID != "1" {
		t.Errorf("expected direction 1, got %s", rec.DirectionID)
	}
	if rec.Track != "A1" {
		t.Errorf("expected track A1, got %s", rec.Track)
	}
}

func TestParseStopTimes_SingleStopAndStringEpoch(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	epoch := now.Add(2 * time.Minute).Unix()

	// Single stop object (no envelope) with the epoch quoted as a string.
	payload := []byte(fmt.Sprintf(`{
		"stopTimes": [
			{"departure": {"time": "%d"},
			 "trip": {"route": {"name": "7"}},
			 "future": false}
		]
	}`, epoch))

	records := ParseStopTimes(payload, "Court Sq", 10, now)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].RouteShortName != "7" {
		t.Errorf("expected route name fallback, got %s", records[0].RouteShortName)
	}
	if records[0].Minutes == nil || *records[0].Minutes != 2 {
		t.Errorf("expected 2 minutes, got %v", records[0].Minutes)
	}
	if records[0].Status != "departed" {
		t.Errorf("expected departed status when future=false, got %q", records[0].Status)
	}
}

func TestParseStopTimes_BadEpochKeepsRecord(t *testing.T) {
	payload := []byte(`{
		"stopTimes": [
			{"arrival": {"time": "soon"}, "trip": {"route": {"id": "L"}}}
		]
	}`)

	records := ParseStopTimes(payload, "Stop", 10, time.Now())
	if len(records) != 1 {
		t.Fatalf("expected record to survive a bad epoch, got %d", len(records))
	}
	if records[0].ArrivalTime != "" {
		t.Errorf("expected empty arrival time, got %q", records[0].ArrivalTime)
	}
	if records[0].Minutes != nil {
		t.Errorf("expected nil minutes, got %v", records[0].Minutes)
	}
}

func TestParseStopTimes_DropsEventlessStopTimes(t *testing.T) {
	payload := []byte(`{"stopTimes": [{"trip": {"route": {"id": "L"}}}]}`)
	if records := ParseStopTimes(payload, "Stop", 10, time.Now()); len(records) != 0 {
		t.Errorf("expected stop time with no events to be dropped, got %d", len(records))
	}
}

// End to end: an epoch five minutes out flows from the wire payload through
// normalization to the rendered center label.
func TestParseStopTimes_CenterLabelFlow(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	epoch := now.Add(5 * time.Minute).Unix()

	payload := []byte(fmt.Sprintf(`{
		"stopTimes": [
			{"arrival": {"time": %d},
			 "trip": {"route": {"id": "G"}, "destination": {"name": "Church Av"}}}
		]
	}`, epoch))

	records := ParseStopTimes(payload, "Nassau Av/Manhattan Ave", 10, now)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Minutes == nil || *rec.Minutes != 5 {
		t.Fatalf("expected 5 minutes, got %v", rec.Minutes)
	}
	if !IsRailRoute(rec.RouteType) {
		t.Fatalf("expected rail route type, got %s", rec.RouteType)
	}
	if label := CenterLabel(rec); label != "Church Av" {
		t.Errorf("expected destination as center label, got %q", label)
	}
}

package transit

import "testing"

func TestCenterLabel_RailPrefersDestination(t *testing.T) {
	rec := ArrivalRecord{
		RouteType:     "Heavy Rail",
		Destination:   "Church Av",
		RouteLongName: "Crosstown",
		StopName:      "Nassau Av/Manhattan Ave",
	}
	if got := CenterLabel(rec); got != "Church Av" {
		t.Errorf("expected destination, got %q", got)
	}

	rec.Destination = ""
	if got := CenterLabel(rec); got != "Crosstown" {
		t.Errorf("expected long name fallback, got %q", got)
	}
}

func TestCenterLabel_CrossStreet(t *testing.T) {
	rec := ArrivalRecord{
		RouteType: "Bus",
		StopName:  "Nassau Av/Driggs Ave",
	}
	if got := CenterLabel(rec); got != "Driggs Ave" {
		t.Errorf("expected cross street, got %q", got)
	}

	// Marker with nothing after it falls through to the stop name.
	rec.StopName = "Nassau Av/"
	if got := CenterLabel(rec); got != "Nassau Av/" {
		t.Errorf("expected stop name fallthrough, got %q", got)
	}
}

func TestCenterLabel_FallbackChain(t *testing.T) {
	cases := []struct {
		name string
		rec  ArrivalRecord
		want string
	}{
		{"stop name", ArrivalRecord{RouteType: "Bus", StopName: "Graham Av"}, "Graham Av"},
		{"long name", ArrivalRecord{RouteType: "Bus", RouteLongName: "Graham Avenue Line"}, "Graham Avenue Line"},
		{"short name", ArrivalRecord{RouteType: "Bus", RouteShortName: "B43"}, "B43"},
		{"placeholder", ArrivalRecord{RouteType: "Bus"}, "Transit"},
	}
	for _, tc := range cases {
		if got := CenterLabel(tc.rec); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestCenterLabel_Deterministic(t *testing.T) {
	rec := ArrivalRecord{RouteType: "Bus", StopName: "Nassau Av/Driggs Ave"}
	first := CenterLabel(rec)
	for i := 0; i < 3; i++ {
		if got := CenterLabel(rec); got != first {
			t.Fatalf("label changed between calls: %q vs %q", first, got)
		}
	}
}

func TestIsRailRoute(t *testing.T) {
	for _, routeType := range []string{"Heavy Rail", "Subway", "Commuter Rail", "heavy rail"} {
		if !IsRailRoute(routeType) {
			t.Errorf("expected %q to read as rail", routeType)
		}
	}
	for _, routeType := range []string{"Bus", "Ferry", ""} {
		if IsRailRoute(routeType) {
			t.Errorf("expected %q to not read as rail", routeType)
		}
	}
}

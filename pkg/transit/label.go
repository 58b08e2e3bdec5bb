package transit

import "strings"

// crossStreetMarker is the prefix stripped from Brooklyn stop names to leave
// just the cross street ("Nassau Av/Driggs Ave" reads better as "Driggs Ave").
const crossStreetMarker = "nassau av/"

// IsRailRoute reports whether a route type string refers to heavy rail/subway.
func IsRailRoute(routeType string) bool {
	lowered := strings.ToLower(routeType)
	for _, token := range []string{"subway", "rail", "heavy"} {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// crossStreet returns the trimmed substring after the cross-street marker,
// or "" when the marker is absent or nothing follows it.
func crossStreet(stopName string) string {
	idx := strings.Index(strings.ToLower(stopName), crossStreetMarker)
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(stopName[idx+len(crossStreetMarker):])
}

// CenterLabel derives the human-facing center text for an arrival row. Rail
// records prioritize destination over geography; surface records prioritize
// geography (cross street) over route naming. The priority order must not be
// rearranged.
func CenterLabel(rec ArrivalRecord) string {
	if IsRailRoute(rec.RouteType) {
		if rec.Destination != "" {
			return rec.Destination
		}
		if rec.RouteLongName != "" {
			return rec.RouteLongName
		}
	}

	if street := crossStreet(rec.StopName); street != "" {
		return street
	}

	for _, fallback := range []string{rec.StopName, rec.RouteLongName, rec.RouteShortName} {
		if fallback != "" {
			return fallback
		}
	}
	return "Transit"
}

package transit

// ViewMode selects which provider's arrivals are eligible for display.
// It is session-scoped: the board cycles through modes on a timer.
type ViewMode string

const (
	ViewCombined ViewMode = "combined"
	ViewSubway   ViewMode = "subway"
	ViewBus      ViewMode = "bus"
)

// ParseViewMode maps a user-supplied string to a ViewMode, defaulting to combined.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewSubway:
		return ViewSubway
	case ViewBus:
		return ViewBus
	default:
		return ViewCombined
	}
}

// ArrivalRecord is the normalized arrival schema every provider adapter
// produces and every renderer consumes. Records are value types built fresh
// each poll cycle and never mutated after creation.
type ArrivalRecord struct {
	RouteShortName string
	RouteLongName  string
	// RouteType is a human-readable category: "Bus", "Heavy Rail",
	// "Commuter Rail", "Light Rail", "Ferry", or "Transit" as a default.
	RouteType string
	// Destination is the trip headsign when the provider exposes one.
	Destination string
	// ArrivalTime is an ISO-8601 timestamp with UTC offset, or empty when
	// the provider's time field could not be parsed.
	ArrivalTime string
	// Minutes is minutes until arrival. nil means unknown; it is never
	// negative (overdue vehicles clamp to 0).
	Minutes *int
	// Opaque passthrough fields.
	DirectionID string
	Status      string
	Track       string
	// StopName is the human label of the stop this record was fetched for.
	StopName string
}

// RouteTypeName converts a GTFS route type number to a readable name.
func RouteTypeName(routeType int) string {
	switch routeType {
	case 0:
		return "Light Rail"
	case 1:
		return "Heavy Rail"
	case 2:
		return "Commuter Rail"
	case 3:
		return "Bus"
	case 4:
		return "Ferry"
	default:
		return "Transit"
	}
}

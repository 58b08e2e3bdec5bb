package transit

import (
	"encoding/json"
	"strconv"
	"time"
)

// Wire shapes for JSON:API trip predictions (MBTA v3 style). Route attributes
// arrive in a side table under "included" and are joined by route id.

type predictionPayload struct {
	Data     []prediction       `json:"data"`
	Included []includedResource `json:"included"`
}

type prediction struct {
	Attributes    predictionAttributes    `json:"attributes"`
	Relationships predictionRelationships `json:"relationships"`
}

type predictionAttributes struct {
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	DirectionID   *int   `json:"direction_id"`
	Status        string `json:"status"`
	Track         string `json:"track"`
}

type predictionRelationships struct {
	Route struct {
		Data *resourceRef `json:"data"`
	} `json:"route"`
}

type resourceRef struct {
	ID string `json:"id"`
}

type includedResource struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes struct {
		ShortName string `json:"short_name"`
		LongName  string `json:"long_name"`
		Type      int    `json:"type"`
	} `json:"attributes"`
}

// routeInfo resolves a route id against the payload's included side table.
// A failed join degrades to placeholder names so the prediction still renders.
func routeInfo(included []includedResource, routeID string) (short, long string, routeType int) {
	short, long, routeType = "Unknown", "Unknown Route", 0
	if routeID == "" {
		return
	}
	for _, item := range included {
		if item.Type == "route" && item.ID == routeID {
			if item.Attributes.ShortName != "" {
				short = item.Attributes.ShortName
			}
			if item.Attributes.LongName != "" {
				long = item.Attributes.LongName
			}
			routeType = item.Attributes.Type
			return
		}
	}
	return
}

// ParseTripPredictions normalizes a JSON:API prediction payload into arrival
// records for one stop. Arrival time wins over departure time; predictions
// with neither are dropped. An unresolvable route keeps the record with
// placeholder names.
func ParseTripPredictions(payload []byte, stopName string, limit int, now time.Time) []ArrivalRecord {
	var body predictionPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil
	}

	var records []ArrivalRecord
	for _, p := range body.Data {
		predicted := p.Attributes.ArrivalTime
		if predicted == "" {
			predicted = p.Attributes.DepartureTime
		}
		if predicted == "" {
			continue
		}

		var routeID string
		if p.Relationships.Route.Data != nil {
			routeID = p.Relationships.Route.Data.ID
		}
		short, long, routeType := routeInfo(body.Included, routeID)

		direction := ""
		if p.Attributes.DirectionID != nil {
			direction = strconv.Itoa(*p.Attributes.DirectionID)
		}

		records = append(records, ArrivalRecord{
			RouteShortName: short,
			RouteLongName:  long,
			RouteType:      RouteTypeName(routeType),
			ArrivalTime:    predicted,
			Minutes:        MinutesUntil(predicted, now),
			DirectionID:    direction,
			Status:         p.Attributes.Status,
			Track:          p.Attributes.Track,
			StopName:       stopName,
		})
	}

	sortByArrival(records)
	return truncateRecords(records, limit)
}

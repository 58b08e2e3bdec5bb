package transit

import (
	"bytes"
	"encoding/json"
	"time"
)

// Wire shapes for Transiter-style stop endpoints (realtimerail.nyc). The
// payload is either a single stop object or an envelope holding several.

type stopTimesEnvelope struct {
	Stops []stopObject `json:"stops"`
}

type stopObject struct {
	StopTimes []stopTime `json:"stopTimes"`
}

type stopTime struct {
	Arrival     *stopEvent `json:"arrival"`
	Departure   *stopEvent `json:"departure"`
	Trip        *stopTrip  `json:"trip"`
	Destination *namedRef  `json:"destination"`
	DirectionID *bool      `json:"directionId"`
	Future      *bool      `json:"future"`
	Track       string     `json:"track"`
}

type stopEvent struct {
	Time epochValue `json:"time"`
}

type stopTrip struct {
	Route       *namedRef `json:"route"`
	Destination *namedRef `json:"destination"`
}

type namedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// epochValue tolerates epoch seconds encoded as either a JSON number or a
// quoted string. Unparseable values decode to "" and the record is kept with
// a null arrival time.
type epochValue string

func (e *epochValue) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if string(data) == "null" {
		return nil
	}
	*e = epochValue(data)
	return nil
}

// ParseStopTimes normalizes a Transiter stop payload into arrival records for
// one stop. Stop times with no arrival or departure event are dropped; an
// epoch value that fails to parse only degrades the record's time fields.
func ParseStopTimes(payload []byte, stopName string, limit int, now time.Time) []ArrivalRecord {
	var stops []stopObject

	var env stopTimesEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil
	}
	if len(env.Stops) > 0 {
		stops = env.Stops
	} else {
		var single stopObject
		if err := json.Unmarshal(payload, &single); err != nil {
			return nil
		}
		stops = []stopObject{single}
	}

	var records []ArrivalRecord
	for _, stop := range stops {
		for _, st := range stop.StopTimes {
			epoch := ""
			if st.Arrival != nil {
				epoch = string(st.Arrival.Time)
			}
			if epoch == "" && st.Departure != nil {
				epoch = string(st.Departure.Time)
			}
			if epoch == "" {
				continue
			}

			route := ""
			destination := ""
			if st.Trip != nil {
				if st.Trip.Route != nil {
					route = st.Trip.Route.ID
					if route == "" {
						route = st.Trip.Route.Name
					}
				}
				if st.Trip.Destination != nil {
					destination = st.Trip.Destination.Name
				}
			}
			if destination == "" && st.Destination != nil {
				destination = st.Destination.Name
			}

			routeShort := route
			if routeShort == "" {
				routeShort = "—"
			}
			routeLong := destination
			if routeLong == "" {
				routeLong = route
			}
			if routeLong == "" {
				routeLong = "Subway"
			}

			direction := ""
			if st.DirectionID != nil {
				if *st.DirectionID {
					direction = "1"
				} else {
					direction = "0"
				}
			}
			status := ""
			if st.Future != nil && !*st.Future {
				status = "departed"
			}

			records = append(records, ArrivalRecord{
				RouteShortName: routeShort,
				RouteLongName:  routeLong,
				RouteType:      RouteTypeName(1),
				Destination:    destination,
				ArrivalTime:    EpochToISO(epoch),
				Minutes:        MinutesUntilEpoch(epoch, now),
				DirectionID:    direction,
				Status:         status,
				Track:          st.Track,
				StopName:       stopName,
			})
		}
	}

	sortByArrival(records)
	return truncateRecords(records, limit)
}

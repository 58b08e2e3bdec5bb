package transit

import (
	"encoding/json"
	"time"
)

// Wire shapes for SIRI StopMonitoring responses served as JSON (MTA Bus Time
// style). Only the fields the board consumes are declared.

type siriEnvelope struct {
	Siri struct {
		ServiceDelivery struct {
			StopMonitoringDelivery []siriDelivery `json:"StopMonitoringDelivery"`
		} `json:"ServiceDelivery"`
	} `json:"Siri"`
}

type siriDelivery struct {
	MonitoredStopVisit []siriVisit `json:"MonitoredStopVisit"`
}

type siriVisit struct {
	MonitoredVehicleJourney siriJourney `json:"MonitoredVehicleJourney"`
}

type siriJourney struct {
	LineRef             string   `json:"LineRef"`
	PublishedLineName   string   `json:"PublishedLineName"`
	DirectionRef        string   `json:"DirectionRef"`
	ProgressStatus      string   `json:"ProgressStatus"`
	ExpectedArrivalTime string   `json:"ExpectedArrivalTime"`
	AimedArrivalTime    string   `json:"AimedArrivalTime"`
	MonitoredCall       siriCall `json:"MonitoredCall"`
}

type siriCall struct {
	ExpectedArrivalTime   string `json:"ExpectedArrivalTime"`
	AimedArrivalTime      string `json:"AimedArrivalTime"`
	ExpectedDepartureTime string `json:"ExpectedDepartureTime"`
}

// bestSIRITime picks the most trustworthy time field for a stop visit.
// Call-level expectations win over aimed times, which win over departure
// estimates; journey-level fields are a last resort.
func bestSIRITime(j siriJourney) string {
	for _, candidate := range []string{
		j.MonitoredCall.ExpectedArrivalTime,
		j.MonitoredCall.AimedArrivalTime,
		j.MonitoredCall.ExpectedDepartureTime,
		j.ExpectedArrivalTime,
		j.AimedArrivalTime,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// ParseSIRI normalizes a SIRI StopMonitoring payload into arrival records for
// one stop. Visits with no resolvable time are dropped silently; a payload
// with no recognizable structure yields an empty list, never an error.
func ParseSIRI(payload []byte, stopName string, limit int, now time.Time) []ArrivalRecord {
	var env siriEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil
	}

	var records []ArrivalRecord
	for _, delivery := range env.Siri.ServiceDelivery.StopMonitoringDelivery {
		for _, visit := range delivery.MonitoredStopVisit {
			journey := visit.MonitoredVehicleJourney

			route := journey.PublishedLineName
			if route == "" {
				route = journey.LineRef
			}
			if route == "" {
				route = "Unknown"
			}

			arrivalTime := bestSIRITime(journey)
			if arrivalTime == "" {
				continue
			}

			records = append(records, ArrivalRecord{
				RouteShortName: route,
				RouteLongName:  route,
				RouteType:      RouteTypeName(3),
				ArrivalTime:    arrivalTime,
				Minutes:        MinutesUntil(arrivalTime, now),
				DirectionID:    journey.DirectionRef,
				Status:         journey.ProgressStatus,
				StopName:       stopName,
			})
		}
	}

	sortByArrival(records)
	return truncateRecords(records, limit)
}

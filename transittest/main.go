// Manual harness: runs canned provider payloads through the three adapters
// and prints the normalized records, without needing API keys or a display.
package main

import (
	"fmt"
	"time"

	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

const siriSample = `{
  "Siri": {"ServiceDelivery": {"StopMonitoringDelivery": [
    {"MonitoredStopVisit": [
      {"MonitoredVehicleJourney": {
        "PublishedLineName": "B48",
        "DirectionRef": "0",
        "MonitoredCall": {"ExpectedArrivalTime": "%s"}
      }}
    ]}
  ]}}
}`

const predictionsSample = `{
  "data": [
    {"attributes": {"arrival_time": "%s", "direction_id": 1, "status": "On time"},
     "relationships": {"route": {"data": {"id": "Red"}}}}
  ],
  "included": [
    {"type": "route", "id": "Red",
     "attributes": {"short_name": "RL", "long_name": "Red Line", "type": 1}}
  ]
}`

const stopTimesSample = `{
  "stopTimes": [
    {"arrival": {"time": "%d"},
     "trip": {"route": {"id": "G"}, "destination": {"name": "Church Av"}},
     "track": "1"}
  ]
}`

func dump(label string, records []transit.ArrivalRecord) {
	fmt.Printf("\n--- %s ---\n", label)
	for _, r := range records {
		mins := "?"
		if r.Minutes != nil {
			mins = fmt.Sprintf("%d", *r.Minutes)
		}
		fmt.Printf("[%s] %s | %s | %s min (arrives %s)\n",
			r.RouteShortName, transit.CenterLabel(r), r.RouteType, mins, r.ArrivalTime)
	}
}

func main() {
	now := time.Now()
	soon := now.Add(7 * time.Minute).UTC().Format(time.RFC3339)

	siri := fmt.Sprintf(siriSample, soon)
	dump("SIRI stop monitoring", transit.ParseSIRI([]byte(siri), "Nassau Av/Driggs Ave", 10, now))

	predictions := fmt.Sprintf(predictionsSample, soon)
	dump("JSON:API trip predictions", transit.ParseTripPredictions([]byte(predictions), "Park Street", 10, now))

	stopTimes := fmt.Sprintf(stopTimesSample, now.Add(3*time.Minute).Unix())
	dump("Transiter stop times", transit.ParseStopTimes([]byte(stopTimes), "Greenpoint Av", 10, now))
}

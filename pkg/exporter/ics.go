package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

// dwellTime is the event length given to each arrival; calendars need a
// nonzero duration to show anything.
const dwellTime = 2 * time.Minute

// GenerateICS writes the upcoming arrivals as a calendar snapshot. Records
// whose arrival time never parsed are skipped; there is no time to anchor an
// event to.
func GenerateICS(records []transit.ArrivalRecord, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	added := 0
	for i, rec := range records {
		if rec.ArrivalTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, rec.ArrivalTime)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(start.Add(dwellTime))
		event.SetSummary(fmt.Sprintf("%s → %s", rec.RouteShortName, transit.CenterLabel(rec)))
		event.SetLocation(rec.StopName)

		description := fmt.Sprintf("Route: %s\nType: %s", rec.RouteLongName, rec.RouteType)
		if rec.Track != "" {
			description += fmt.Sprintf("\nTrack: %s", rec.Track)
		}
		event.SetDescription(description)
		added++
	}

	if added == 0 {
		return fmt.Errorf("no arrivals with usable times to export")
	}
	return cal.SerializeTo(w)
}

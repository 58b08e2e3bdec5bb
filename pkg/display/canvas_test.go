package display

import (
	"strings"
	"testing"
	"time"

	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

func TestCanvasRenderer_Render(t *testing.T) {
	surface := &fakeSurface{cols: 90, rows: 24}
	r := NewCanvasRenderer(surface, DefaultTheme(), nil)
	r.now = func() time.Time { return time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC) }
	r.SetView(transit.ViewBus)

	three := 3
	records := []transit.ArrivalRecord{
		{RouteShortName: "B43", RouteType: "Bus", StopName: "Nassau Av/Driggs Ave", Minutes: &three},
	}
	if err := r.Render(records); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !surface.cleared || !surface.presented {
		t.Error("expected Clear and Present around the frame")
	}

	var texts []string
	for _, d := range surface.texts {
		texts = append(texts, d.text)
	}
	joined := strings.Join(texts, "|")
	for _, want := range []string{"B43", "Driggs Ave", "3 min", "Last Updated: 05:30:00 PM", "View: Bus"} {
		if !strings.Contains(joined, want) {
			t.Errorf("frame missing %q: %s", want, joined)
		}
	}
}

func TestCanvasRenderer_NoArrivals(t *testing.T) {
	surface := &fakeSurface{cols: 90, rows: 24}
	r := NewCanvasRenderer(surface, DefaultTheme(), nil)
	r.now = func() time.Time { return time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC) }

	if err := r.Render(nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	found := false
	for _, d := range surface.texts {
		if strings.Contains(d.text, "No arrival information") {
			found = true
		}
	}
	if !found {
		t.Error("expected the no-data placeholder to be drawn")
	}
}

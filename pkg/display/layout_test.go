package display

import (
	"testing"

	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

func minutes(n int) *int { return &n }

func testViewport() Viewport {
	return Viewport{
		RowCapacity:      4,
		WidthBudget:      60,
		CountdownReserve: 8,
		BadgeMargin:      2,
		IconAdvance:      3,
		MaxChars:         30,
		BadgeMaxChars:    4,
		MinuteSuffix:     " min",
		NilCountdown:     "—",
		Measure:          func(s string) int { return len([]rune(s)) },
	}
}

func TestLayout_CapsAtRowCapacity(t *testing.T) {
	records := make([]transit.ArrivalRecord, 10)
	for i := range records {
		records[i] = transit.ArrivalRecord{
			RouteShortName: "B43",
			RouteType:      "Bus",
			StopName:       "Graham Av",
			Minutes:        minutes(i + 1),
		}
	}

	rows := Layout(records, testViewport(), DefaultTheme(), nil)
	if len(rows) != 4 {
		t.Fatalf("expected 4 placed rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Row != i {
			t.Errorf("row %d carries index %d", i, row.Row)
		}
	}
	// Dropped whole and in order: the first four records survive.
	if rows[3].CountdownText != "4 min" {
		t.Errorf("expected 4th record's countdown, got %q", rows[3].CountdownText)
	}
}

func TestLayout_CountdownFormats(t *testing.T) {
	vp := testViewport()
	theme := DefaultTheme()

	cases := []struct {
		mins *int
		text string
	}{
		{nil, "—"},
		{minutes(0), "Now"},
		{minutes(1), "1 min"},
		{minutes(12), "12 min"},
	}
	for _, tc := range cases {
		rows := Layout([]transit.ArrivalRecord{{RouteShortName: "G", Minutes: tc.mins}}, vp, theme, nil)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].CountdownText != tc.text {
			t.Errorf("minutes %v: expected %q, got %q", tc.mins, tc.text, rows[0].CountdownText)
		}
		wantX := vp.WidthBudget - len([]rune(tc.text))
		if rows[0].CountdownX != wantX {
			t.Errorf("countdown %q: expected x=%d, got %d", tc.text, wantX, rows[0].CountdownX)
		}
	}
}

func TestLayout_CenterClampedToCountdownReserve(t *testing.T) {
	vp := testViewport()
	vp.WidthBudget = 30
	vp.MaxChars = 40

	// 20 runes: fits the 30-unit budget but not at the badge offset, so the
	// clamp pulls it back over the badge region.
	rec := transit.ArrivalRecord{
		RouteShortName: "B43",
		RouteType:      "Bus",
		StopName:       "Graham Av At Metropo",
		Minutes:        minutes(7),
	}
	rows := Layout([]transit.ArrivalRecord{rec}, vp, DefaultTheme(), nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	rightEdge := row.CenterX + len([]rune(row.CenterText))
	if rightEdge > vp.WidthBudget-vp.CountdownReserve {
		t.Errorf("center text crosses countdown reserve: right edge %d, limit %d",
			rightEdge, vp.WidthBudget-vp.CountdownReserve)
	}
	if row.CenterX != 2 {
		t.Errorf("expected center clamped to x=2, got %d", row.CenterX)
	}
}

func TestLayout_BadgeDecision(t *testing.T) {
	dir := t.TempDir()
	writeIconFile(t, dir, "g.png")
	icons := LoadIconSet(dir)

	subway := transit.ArrivalRecord{RouteShortName: "G", RouteType: "Heavy Rail", Minutes: minutes(3)}
	bus := transit.ArrivalRecord{RouteShortName: "G", RouteType: "Bus", Minutes: minutes(3)}

	rows := Layout([]transit.ArrivalRecord{subway, bus}, testViewport(), DefaultTheme(), icons)
	if rows[0].IconKey != "g" || rows[0].BadgeText != "" {
		t.Errorf("expected icon badge for subway route, got %+v", rows[0])
	}
	// Bus routes always use text badges even when an icon exists.
	if rows[1].IconKey != "" || rows[1].BadgeText != "G" {
		t.Errorf("expected text badge for bus route, got %+v", rows[1])
	}
}

func TestLayout_EmptyInput(t *testing.T) {
	if rows := Layout(nil, testViewport(), DefaultTheme(), nil); len(rows) != 0 {
		t.Errorf("expected zero rows for no records, got %d", len(rows))
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Driggs Ave", 6); got != "Driggs" {
		t.Errorf("expected hard prefix cut, got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("expected passthrough under budget, got %q", got)
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Errorf("expected zero budget to disable truncation, got %q", got)
	}
	// Idempotent: cutting a cut string changes nothing.
	once := Truncate("Nassau Av/Driggs Ave", 8)
	if twice := Truncate(once, 8); twice != once {
		t.Errorf("truncation not idempotent: %q vs %q", once, twice)
	}
}

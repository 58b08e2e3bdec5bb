package display

import (
	"strconv"
	"strings"

	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

// Layout places arrival records into board rows under the viewport's budget.
// Both renderers share this policy; only the viewport's measurement primitive
// differs. Records beyond RowCapacity are dropped in order. Empty input
// yields zero rows; the "no data" placeholder is a renderer concern.
func Layout(records []transit.ArrivalRecord, vp Viewport, theme Theme, icons *IconSet) []PlacedRow {
	if vp.RowCapacity <= 0 {
		return nil
	}
	if len(records) > vp.RowCapacity {
		records = records[:vp.RowCapacity]
	}

	rows := make([]PlacedRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, placeRow(i, rec, vp, theme, icons))
	}
	return rows
}

func placeRow(rowIdx int, rec transit.ArrivalRecord, vp Viewport, theme Theme, icons *IconSet) PlacedRow {
	route := rec.RouteShortName
	if route == "" {
		route = rec.RouteLongName
	}
	if route == "" {
		route = "Route"
	}

	row := PlacedRow{Row: rowIdx, BadgeX: 0}

	// Non-surface routes render a pre-built icon badge when one exists;
	// everything else falls back to a text badge in the route's color.
	badgeWidth := 0
	if key, ok := icons.Lookup(route); ok && !isBusRoute(rec.RouteType) {
		row.IconKey = key
		row.BadgeColor = theme.Header
		badgeWidth = vp.IconAdvance
	} else {
		row.BadgeText = Truncate(route, vp.BadgeMaxChars)
		row.BadgeColor = theme.RouteBadgeColor(route)
		badgeWidth = vp.Measure(row.BadgeText)
	}

	row.CenterText = Truncate(transit.CenterLabel(rec), vp.MaxChars)
	row.CenterColor = theme.Header
	row.CenterX = row.BadgeX + badgeWidth + vp.BadgeMargin
	// Countdown visibility beats badge spacing: clamp the center label's
	// left edge so it never crosses into the countdown reserve, even if
	// that pushes it back over the badge region on cramped viewports.
	if maxLeft := vp.WidthBudget - vp.CountdownReserve - vp.Measure(row.CenterText); row.CenterX > maxLeft {
		row.CenterX = maxLeft
		if row.CenterX < 0 {
			row.CenterX = 0
		}
	}

	row.CountdownText = formatCountdown(rec.Minutes, vp)
	row.CountdownColor = theme.CountdownColor(rec.Minutes)
	row.CountdownX = vp.WidthBudget - vp.Measure(row.CountdownText)
	if row.CountdownX < 0 {
		row.CountdownX = 0
	}

	return row
}

func isBusRoute(routeType string) bool {
	return strings.Contains(strings.ToLower(routeType), "bus")
}

func formatCountdown(minutes *int, vp Viewport) string {
	switch {
	case minutes == nil:
		return vp.NilCountdown
	case *minutes == 0:
		return "Now"
	default:
		return strconv.Itoa(*minutes) + vp.MinuteSuffix
	}
}

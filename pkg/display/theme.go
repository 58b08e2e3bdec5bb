// Package display turns normalized arrival records into positioned, colored
// board rows and draws them on one of two render backends: a scalable
// terminal canvas and a fixed-size LED-matrix-style grid.
package display

import (
	"fmt"
	"strings"
)

// Color is a plain RGB triple shared by both backends. The canvas converts it
// to a lipgloss color, the matrix emulator uses the raw channels.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Theme is the color policy both renderers share: countdown urgency
// thresholds plus the route-prefix badge table. It is immutable after
// construction; renderers receive it injected, never via globals.
type Theme struct {
	Background Color
	Text       Color
	Header     Color
	Arrival    Color
	Warning    Color
	Urgent     Color
	Separator  Color

	routeColors map[string]Color
}

// NewTheme builds a theme with an injected route-prefix color table. The
// table is copied so callers cannot mutate the theme afterwards.
func NewTheme(base Theme, routePrefixColors map[string]Color) Theme {
	base.routeColors = make(map[string]Color, len(routePrefixColors))
	for prefix, color := range routePrefixColors {
		base.routeColors[prefix] = color
	}
	return base
}

// DefaultTheme is the stock board palette with MTA-style borough prefixes:
// B(rooklyn) blue, M(anhattan) red, Q(ueens) teal, S(taten Island) orange,
// G crosstown green.
func DefaultTheme() Theme {
	return NewTheme(Theme{
		Background: Color{0, 0, 0},
		Text:       Color{255, 255, 0},
		Header:     Color{255, 255, 255},
		Arrival:    Color{0, 255, 0},
		Warning:    Color{255, 165, 0},
		Urgent:     Color{255, 0, 0},
		Separator:  Color{64, 64, 64},
	}, map[string]Color{
		"B": {30, 115, 190},
		"M": {200, 16, 46},
		"Q": {0, 128, 128},
		"S": {255, 140, 0},
		"G": {0, 255, 0},
	})
}

// CountdownColor applies the urgency thresholds: unknown minutes stay
// neutral, due-now is urgent, five minutes or less warns, everything else is
// a normal arrival.
func (t Theme) CountdownColor(minutes *int) Color {
	switch {
	case minutes == nil:
		return t.Text
	case *minutes == 0:
		return t.Urgent
	case *minutes <= 5:
		return t.Warning
	default:
		return t.Arrival
	}
}

// RouteBadgeColor picks a badge color from the route-prefix table; routes
// with no mapped prefix use the header color.
func (t Theme) RouteBadgeColor(routeName string) Color {
	key := strings.ToUpper(strings.TrimSpace(routeName))
	if key == "" {
		return t.Header
	}
	if color, ok := t.routeColors[key[:1]]; ok {
		return color
	}
	return t.Header
}

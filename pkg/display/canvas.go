package display

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

// Renderer is the backend contract: the board loop is polymorphic over it
// and never inspects which backend it got.
type Renderer interface {
	SetView(mode transit.ViewMode)
	Render(records []transit.ArrivalRecord) error
}

const (
	canvasRowHeight  = 2
	canvasLeftMargin = 2
	canvasFooterRows = 2
)

// CanvasRenderer draws the board on an arbitrary-resolution terminal canvas.
// Row capacity follows the surface height; measurement uses proportional
// rune widths via lipgloss.
type CanvasRenderer struct {
	surface  Surface
	theme    Theme
	icons    *IconSet
	viewMode transit.ViewMode
	// now is swappable for tests.
	now func() time.Time
}

func NewCanvasRenderer(surface Surface, theme Theme, icons *IconSet) *CanvasRenderer {
	return &CanvasRenderer{
		surface:  surface,
		theme:    theme,
		icons:    icons,
		viewMode: transit.ViewCombined,
		now:      time.Now,
	}
}

func (r *CanvasRenderer) SetView(mode transit.ViewMode) {
	r.viewMode = mode
}

// viewport builds this frame's budget from the current surface size.
func (r *CanvasRenderer) viewport() Viewport {
	width, height := r.surface.Size()
	budget := width - 2*canvasLeftMargin
	reserve := lipgloss.Width("88 min") + 2
	return Viewport{
		RowCapacity:      (height - canvasFooterRows) / canvasRowHeight,
		WidthBudget:      budget,
		CountdownReserve: reserve,
		BadgeMargin:      2,
		IconAdvance:      4,
		MaxChars:         budget - reserve - 12,
		BadgeMaxChars:    8,
		MinuteSuffix:     " min",
		NilCountdown:     "—",
		Measure:          lipgloss.Width,
	}
}

func (r *CanvasRenderer) Render(records []transit.ArrivalRecord) error {
	r.surface.Clear()

	rows := Layout(records, r.viewport(), r.theme, r.icons)
	if len(rows) == 0 {
		r.drawNoArrivals()
	} else {
		r.drawRows(rows)
	}
	r.drawFooter()
	return r.surface.Present()
}

func (r *CanvasRenderer) drawRows(rows []PlacedRow) {
	width, _ := r.surface.Size()
	for i, row := range rows {
		y := row.Row * canvasRowHeight

		if row.IconKey != "" {
			// The terminal stands in for the bitmap asset with a
			// colored chip carrying the bullet's letter.
			chip := " " + row.IconKey + " "
			r.surface.DrawBadge(canvasLeftMargin+row.BadgeX, y, r.theme.Background, r.theme.RouteBadgeColor(row.IconKey), chip)
		} else {
			r.surface.DrawText(canvasLeftMargin+row.BadgeX, y, row.BadgeColor, row.BadgeText)
		}

		r.surface.DrawText(canvasLeftMargin+row.CenterX, y, row.CenterColor, row.CenterText)
		r.surface.DrawText(canvasLeftMargin+row.CountdownX, y, row.CountdownColor, row.CountdownText)

		if i < len(rows)-1 {
			r.surface.DrawHLine(canvasLeftMargin, width-canvasLeftMargin-1, y+1, r.theme.Separator)
		}
	}
}

func (r *CanvasRenderer) drawNoArrivals() {
	width, height := r.surface.Size()
	message := "No arrival information available"
	x := (width - lipgloss.Width(message)) / 2
	r.surface.DrawText(x, height/2-1, r.theme.Warning, message)
}

func (r *CanvasRenderer) drawFooter() {
	width, height := r.surface.Size()
	y := height - 1

	updated := "Last Updated: " + r.now().Format("03:04:05 PM")
	r.surface.DrawText((width-lipgloss.Width(updated))/2, y, r.theme.Header, updated)

	mode := "View: " + cases.Title(language.English).String(string(r.viewMode))
	r.surface.DrawText(width-lipgloss.Width(mode)-2, y, r.theme.Header, mode)
}

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/SashaBoguraev/mta-tracker/pkg/config"
	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

// MatrixRenderer draws the board on a small fixed-size LED grid. Row capacity
// is derived from the panel height, padding and font metrics; an independent
// max-arrivals cap can shrink it further but never exceed it. Measurement
// sums per-character font advances.
type MatrixRenderer struct {
	surface  Surface
	font     *Font
	theme    Theme
	viewMode transit.ViewMode

	rowHeight   int
	rowStride   int
	topPadding  int
	maxLines    int
	maxChars    int
	maxArrivals int
}

func NewMatrixRenderer(surface Surface, font *Font, theme Theme, cfg config.MatrixSettings) *MatrixRenderer {
	cols, rows := surface.Size()

	preferred := cfg.MaxLines
	if preferred < 1 {
		preferred = 1
	}

	lineHeight := cfg.LineHeight
	if lineHeight <= 0 {
		lineHeight = (rows - 1) / preferred
		if lineHeight < 6 {
			lineHeight = 6
		}
		compact := cfg.Compact == nil || *cfg.Compact
		if compact && lineHeight > font.Height {
			lineHeight = font.Height
			if lineHeight < 6 {
				lineHeight = 6
			}
		}
	}

	rowSpacing := cfg.RowSpacing
	if rowSpacing < 0 {
		rowSpacing = 0
	}
	topPadding := cfg.TopPadding
	if topPadding < 0 {
		topPadding = 0
	}

	rowHeight := lineHeight
	if font.Height > rowHeight {
		rowHeight = font.Height
	}
	rowStride := rowHeight + rowSpacing
	if rowStride < 1 {
		rowStride = 1
	}

	available := rows - topPadding
	if available < 0 {
		available = 0
	}
	computed := available / rowStride
	if computed < 1 {
		computed = 1
	}
	maxLines := preferred
	if computed < maxLines {
		maxLines = computed
	}

	maxChars := cfg.MaxChars
	if maxChars <= 0 {
		maxChars = cols / 6
		if maxChars < 4 {
			maxChars = 4
		}
	}

	// The arrivals cap is independent of row capacity but never exceeds it.
	maxArrivals := cfg.MaxArrivals
	if maxArrivals <= 0 || maxArrivals > maxLines {
		maxArrivals = maxLines
	}

	return &MatrixRenderer{
		surface:     surface,
		font:        font,
		theme:       theme,
		viewMode:    transit.ViewCombined,
		rowHeight:   rowHeight,
		rowStride:   rowStride,
		topPadding:  topPadding,
		maxLines:    maxLines,
		maxChars:    maxChars,
		maxArrivals: maxArrivals,
	}
}

func (r *MatrixRenderer) SetView(mode transit.ViewMode) {
	r.viewMode = mode
}

func (r *MatrixRenderer) viewport() Viewport {
	cols, _ := r.surface.Size()
	return Viewport{
		RowCapacity:      r.maxArrivals,
		WidthBudget:      cols - 1,
		CountdownReserve: r.font.TextWidth("88m") + 2,
		BadgeMargin:      8,
		IconAdvance:      0,
		MaxChars:         r.maxChars,
		BadgeMaxChars:    4,
		MinuteSuffix:     "m",
		NilCountdown:     "--",
		Measure:          r.font.TextWidth,
	}
}

func (r *MatrixRenderer) Render(records []transit.ArrivalRecord) error {
	r.surface.Clear()

	// The grid has no bitmap badge assets, so the layout engine gets a nil
	// icon set and every badge comes out as text.
	rows := Layout(records, r.viewport(), r.theme, nil)
	if len(rows) == 0 {
		r.drawNoArrivals()
	} else {
		for _, row := range rows {
			y := r.topPadding + row.Row*r.rowStride + r.rowHeight
			r.surface.DrawText(row.BadgeX, y, row.BadgeColor, row.BadgeText)
			r.surface.DrawText(row.CenterX, y, row.CenterColor, row.CenterText)
			r.surface.DrawText(row.CountdownX, y, row.CountdownColor, row.CountdownText)
		}
	}
	return r.surface.Present()
}

func (r *MatrixRenderer) drawNoArrivals() {
	cols, _ := r.surface.Size()
	message := Truncate("No arrivals", r.maxChars)
	x := (cols - r.font.TextWidth(message)) / 2
	if x < 1 {
		x = 1
	}
	r.surface.DrawText(x, r.topPadding+r.rowHeight, r.theme.Warning, message)
}

// matrixEmulator previews the LED panel in a terminal. It is pixel-addressed
// like the real panel driver; draws are quantized to terminal cells using the
// font's digit advance, which is close enough for a preview.
type matrixEmulator struct {
	cols, rows   int
	cellW, cellH int
	grid         [][]cell
	out          io.Writer
}

// NewMatrixEmulator builds a terminal-backed stand-in for a cols x rows panel.
func NewMatrixEmulator(out io.Writer, cols, rows int, font *Font) (Surface, error) {
	if cols < 16 || rows < 8 {
		return nil, fmt.Errorf("matrix too small: %dx%d", cols, rows)
	}
	cellW := font.CharacterWidth('0')
	if cellW < 1 {
		cellW = 1
	}
	cellH := font.Height
	if cellH < 1 {
		cellH = 1
	}
	m := &matrixEmulator{cols: cols, rows: rows, cellW: cellW, cellH: cellH, out: out}
	m.Clear()
	return m, nil
}

func (m *matrixEmulator) Size() (int, int) { return m.cols, m.rows }

func (m *matrixEmulator) gridSize() (int, int) {
	return m.cols / m.cellW, m.rows/m.cellH + 1
}

func (m *matrixEmulator) Clear() {
	w, h := m.gridSize()
	m.grid = make([][]cell, h)
	for y := range m.grid {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		m.grid[y] = row
	}
}

func (m *matrixEmulator) DrawText(x, y int, c Color, text string) {
	w, h := m.gridSize()
	line := (y - 1) / m.cellH
	if line < 0 || line >= h {
		return
	}
	col := x / m.cellW
	for _, r := range text {
		if col >= w {
			break
		}
		if col >= 0 {
			m.grid[line][col] = cell{r: r, fg: c}
		}
		col++
	}
}

func (m *matrixEmulator) DrawBadge(x, y int, fg, bg Color, text string) {
	m.DrawText(x, y, fg, text)
}

func (m *matrixEmulator) DrawHLine(x1, x2, y int, c Color) {
	m.DrawText(x1, y, c, strings.Repeat("-", (x2-x1)/m.cellW+1))
}

func (m *matrixEmulator) Present() error {
	w, _ := m.gridSize()
	border := "+" + strings.Repeat("-", w) + "+"

	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	b.WriteString(border)
	b.WriteByte('\n')
	for _, row := range m.grid {
		b.WriteString("|")
		b.WriteString(renderCellRow(row))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	b.WriteByte('\n')
	_, err := io.WriteString(m.out, b.String())
	return err
}

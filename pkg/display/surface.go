package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Surface is the draw-primitive contract renderers speak. Coordinates are in
// surface units: terminal cells for the canvas surface, panel pixels for the
// matrix emulator. The pipeline's real contract is the PlacedRow sequence;
// surfaces just put it on screen.
type Surface interface {
	Size() (width, height int)
	Clear()
	DrawText(x, y int, c Color, text string)
	// DrawBadge draws text on a colored chip, used for route icon keys.
	DrawBadge(x, y int, fg, bg Color, text string)
	DrawHLine(x1, x2, y int, c Color)
	Present() error
}

type cell struct {
	r     rune
	fg    Color
	bg    Color
	badge bool
}

// termSurface is a cell-addressed terminal frame. Each Present composes the
// whole frame and writes it after a cursor-home escape so successive frames
// overdraw in place.
type termSurface struct {
	width, height int
	cells         [][]cell
	out           io.Writer
	background    Color
}

// NewTermSurface builds a terminal surface of the given cell dimensions.
func NewTermSurface(out io.Writer, width, height int) (Surface, error) {
	if width < 20 || height < 4 {
		return nil, fmt.Errorf("terminal surface too small: %dx%d", width, height)
	}
	s := &termSurface{width: width, height: height, out: out}
	s.Clear()
	return s, nil
}

func (s *termSurface) Size() (int, int) { return s.width, s.height }

func (s *termSurface) Clear() {
	s.cells = make([][]cell, s.height)
	for y := range s.cells {
		row := make([]cell, s.width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		s.cells[y] = row
	}
}

func (s *termSurface) DrawText(x, y int, c Color, text string) {
	s.put(x, y, c, s.background, false, text)
}

func (s *termSurface) DrawBadge(x, y int, fg, bg Color, text string) {
	s.put(x, y, fg, bg, true, text)
}

func (s *termSurface) put(x, y int, fg, bg Color, badge bool, text string) {
	if y < 0 || y >= s.height {
		return
	}
	for _, r := range text {
		if x < 0 {
			x++
			continue
		}
		if x >= s.width {
			break
		}
		s.cells[y][x] = cell{r: r, fg: fg, bg: bg, badge: badge}
		x++
	}
}

func (s *termSurface) DrawHLine(x1, x2, y int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	for x := x1; x <= x2 && x < s.width; x++ {
		if x < 0 {
			continue
		}
		s.cells[y][x] = cell{r: '─', fg: c}
	}
}

func (s *termSurface) Present() error {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	for _, row := range s.cells {
		b.WriteString(renderCellRow(row))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(s.out, b.String())
	return err
}

// renderCellRow styles contiguous same-colored runs together so a frame does
// not emit one escape sequence per cell.
func renderCellRow(row []cell) string {
	var out strings.Builder
	start := 0
	for start < len(row) {
		end := start
		for end < len(row) && row[end].fg == row[start].fg &&
			row[end].bg == row[start].bg && row[end].badge == row[start].badge {
			end++
		}
		var text strings.Builder
		for _, c := range row[start:end] {
			text.WriteRune(c.r)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(row[start].fg.Hex()))
		if row[start].badge {
			style = style.Background(lipgloss.Color(row[start].bg.Hex())).Bold(true)
		}
		out.WriteString(style.Render(text.String()))
		start = end
	}
	return out.String()
}

package display

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Font holds the metrics of a fixed-grid display font: overall height plus
// per-character advance widths. Only metrics are parsed; glyph bitmaps stay
// with whatever drives the actual panel.
type Font struct {
	Height   int
	advances map[rune]int
}

// CharacterWidth returns the advance of one rune. Characters the font does
// not cover fall back to half the font height, matching how unknown glyphs
// are boxed on the panel.
func (f *Font) CharacterWidth(r rune) int {
	if f.advances != nil {
		if w, ok := f.advances[r]; ok {
			return w
		}
	}
	fallback := f.Height / 2
	if fallback < 1 {
		fallback = 1
	}
	return fallback
}

// TextWidth sums per-character advances for a string.
func (f *Font) TextWidth(text string) int {
	total := 0
	for _, r := range text {
		total += f.CharacterWidth(r)
	}
	return total
}

// LoadFont parses the metric fields of a BDF font file: FONTBOUNDINGBOX for
// the height and each character's ENCODING/DWIDTH pair. Bitmap data is
// skipped entirely.
func LoadFont(path string) (*Font, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open font: %w", err)
	}
	defer file.Close()

	font := &Font{advances: make(map[rune]int)}
	encoding := -1

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "FONTBOUNDINGBOX":
			if len(fields) >= 3 {
				if h, err := strconv.Atoi(fields[2]); err == nil {
					font.Height = h
				}
			}
		case "STARTCHAR":
			encoding = -1
		case "ENCODING":
			if len(fields) >= 2 {
				if e, err := strconv.Atoi(fields[1]); err == nil {
					encoding = e
				}
			}
		case "DWIDTH":
			if encoding >= 0 && len(fields) >= 2 {
				if w, err := strconv.Atoi(fields[1]); err == nil {
					font.advances[rune(encoding)] = w
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read font: %w", err)
	}
	if font.Height == 0 || len(font.advances) == 0 {
		return nil, fmt.Errorf("no usable metrics in font file %s", path)
	}
	return font, nil
}

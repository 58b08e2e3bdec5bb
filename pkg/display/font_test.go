package display

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleBDF = `STARTFONT 2.1
FONT -misc-fixed-medium-r-normal--13-120-75-75-C-70-ISO10646-1
SIZE 13 75 75
FONTBOUNDINGBOX 7 13 0 -2
CHARS 2
STARTCHAR zero
ENCODING 48
SWIDTH 538 0
DWIDTH 7 0
BBX 5 9 1 0
BITMAP
70
88
ENDCHAR
STARTCHAR m
ENCODING 109
SWIDTH 538 0
DWIDTH 7 0
BBX 7 6 0 0
BITMAP
da
ENDCHAR
ENDFONT
`

func writeFontFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.bdf")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFont(t *testing.T) {
	font, err := LoadFont(writeFontFile(t, sampleBDF))
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	if font.Height != 13 {
		t.Errorf("expected height 13 from FONTBOUNDINGBOX, got %d", font.Height)
	}
	if got := font.CharacterWidth('0'); got != 7 {
		t.Errorf("expected advance 7 for '0', got %d", got)
	}
	if got := font.CharacterWidth('m'); got != 7 {
		t.Errorf("expected advance 7 for 'm', got %d", got)
	}
	// Uncovered characters fall back to half the font height.
	if got := font.CharacterWidth('Z'); got != 6 {
		t.Errorf("expected fallback 6 for uncovered rune, got %d", got)
	}
	if got := font.TextWidth("0m"); got != 14 {
		t.Errorf("expected summed width 14, got %d", got)
	}
}

func TestLoadFont_NoMetrics(t *testing.T) {
	if _, err := LoadFont(writeFontFile(t, "STARTFONT 2.1\nENDFONT\n")); err == nil {
		t.Error("expected error for a font with no usable metrics")
	}
}

func TestLoadFont_MissingFile(t *testing.T) {
	if _, err := LoadFont(filepath.Join(t.TempDir(), "absent.bdf")); err == nil {
		t.Error("expected error for a missing font file")
	}
}

package display

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SashaBoguraev/mta-tracker/pkg/config"
)

// FontPathEnvVar overrides where the matrix backend looks for its BDF font.
const FontPathEnvVar = "MATRIX_FONT_PATH"

const defaultFontPath = "fonts/7x13.bdf"

// Negotiate selects a render backend at startup. The matrix backend is
// usable only when its font metrics load; otherwise the canvas takes over.
// It errors only when neither backend can be constructed.
func Negotiate(out io.Writer, prefs config.DisplaySettings, theme Theme, logger *slog.Logger) (Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	backend := prefs.Backend
	if backend == "" {
		backend = "auto"
	}

	if backend == "matrix" || backend == "auto" {
		font, err := probeMatrixFont(prefs.Matrix)
		if err == nil {
			surface, serr := NewMatrixEmulator(out, prefs.Matrix.Cols, prefs.Matrix.Rows, font)
			if serr == nil {
				return NewMatrixRenderer(surface, font, theme, prefs.Matrix), nil
			}
			err = serr
		}
		if backend == "matrix" {
			logger.Warn("matrix backend unusable, falling back to canvas",
				slog.String("error", err.Error()))
		}
	}

	surface, err := NewTermSurface(out, prefs.Width, prefs.Height)
	if err != nil {
		return nil, fmt.Errorf("no usable display backend: %w", err)
	}
	icons := LoadIconSet(prefs.IconDir)
	return NewCanvasRenderer(surface, theme, icons), nil
}

// probeMatrixFont is the capability check for the fixed-grid backend: the
// configured font path, then the environment override, then the conventional
// location. In auto mode a missing font simply means "use the canvas".
func probeMatrixFont(cfg config.MatrixSettings) (*Font, error) {
	path := cfg.FontPath
	if path == "" {
		path = os.Getenv(FontPathEnvVar)
	}
	if path == "" {
		path = defaultFontPath
	}
	font, err := LoadFont(path)
	if err != nil {
		return nil, fmt.Errorf("matrix font not usable at %s (set %s or copy one from hzeller/rpi-rgb-led-matrix/fonts): %w",
			path, FontPathEnvVar, err)
	}
	return font, nil
}

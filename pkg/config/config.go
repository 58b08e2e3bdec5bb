package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Provider describes one transit data source. The base URL may carry a
// ##KEY## placeholder for the API key; endpoint templates carry a STOP_ID
// placeholder.
type Provider struct {
	// Type names the wire shape the provider speaks. It is fixed
	// configuration, never sniffed from the payload at runtime.
	Type      string            `yaml:"type" validate:"omitempty,oneof=vehicle_monitoring trip_predictions stop_times"`
	BaseURL   string            `yaml:"base_url" validate:"required"`
	APIKey    string            `yaml:"api_key"`
	Headers   map[string]string `yaml:"headers"`
	Endpoints map[string]string `yaml:"endpoints" validate:"required"`
}

// Endpoint returns the endpoint template for a name, or "" when unset.
func (p *Provider) Endpoint(name string) string {
	if p == nil {
		return ""
	}
	return p.Endpoints[name]
}

// Stop is one configured transit stop: the provider's id plus a display name.
type Stop struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name"`
}

// DisplayName falls back to a generated label when no name is configured.
func (s Stop) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return "Stop " + s.ID
}

// RequestSettings are shared across providers.
type RequestSettings struct {
	TimeoutSeconds int `yaml:"timeout" validate:"gte=0"`
	MaxArrivals    int `yaml:"max_arrivals" validate:"gte=0"`
}

// MatrixSettings shape the fixed-grid LED backend.
type MatrixSettings struct {
	Rows        int    `yaml:"rows"`
	Cols        int    `yaml:"cols"`
	MaxLines    int    `yaml:"max_lines"`
	LineHeight  int    `yaml:"line_height"`
	RowSpacing  int    `yaml:"row_spacing"`
	TopPadding  int    `yaml:"top_padding"`
	MaxChars    int    `yaml:"max_chars"`
	MaxArrivals int    `yaml:"max_arrivals"`
	Compact     *bool  `yaml:"compact"`
	FontPath    string `yaml:"font_path"`
}

// DisplaySettings select and tune the render backend.
type DisplaySettings struct {
	Backend               string         `yaml:"backend" validate:"omitempty,oneof=auto canvas matrix"`
	Width                 int            `yaml:"width"`
	Height                int            `yaml:"height"`
	SwitchIntervalSeconds int            `yaml:"switch_interval" validate:"gte=0"`
	AccentColor           string         `yaml:"accent_color"`
	IconDir               string         `yaml:"icon_dir"`
	Matrix                MatrixSettings `yaml:"matrix"`
}

// Config is the root board configuration.
type Config struct {
	BusProvider    *Provider       `yaml:"bus_provider"`
	SubwayProvider *Provider       `yaml:"subway_provider"`
	BusStops       []Stop          `yaml:"bus_stops"`
	SubwayStops    []Stop          `yaml:"subway_stops"`
	Request        RequestSettings `yaml:"request"`
	Display        DisplaySettings `yaml:"display"`
}

const defaultConfigName = ".mta-tracker.yml"

// DefaultPath returns the config location searched when no --config flag is
// given: ./board.yml first, then ~/.mta-tracker.yml.
func DefaultPath() (string, error) {
	if _, err := os.Stat("board.yml"); err == nil {
		return "board.yml", nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, defaultConfigName), nil
}

// Load reads and validates the board configuration from path. Providers are
// validated individually: an incomplete provider block fails the load rather
// than surfacing later as a malformed request.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	v := validator.New()
	for name, p := range map[string]*Provider{"bus_provider": cfg.BusProvider, "subway_provider": cfg.SubwayProvider} {
		if p == nil {
			continue
		}
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid %s config: %w", name, err)
		}
	}
	if err := v.Struct(cfg.Request); err != nil {
		return nil, fmt.Errorf("invalid request settings: %w", err)
	}
	if err := v.Struct(cfg.Display); err != nil {
		return nil, fmt.Errorf("invalid display settings: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Request.TimeoutSeconds == 0 {
		cfg.Request.TimeoutSeconds = 30
	}
	if cfg.Request.MaxArrivals == 0 {
		cfg.Request.MaxArrivals = 10
	}
	if cfg.Display.SwitchIntervalSeconds == 0 {
		cfg.Display.SwitchIntervalSeconds = 20
	}
	if cfg.Display.Backend == "" {
		cfg.Display.Backend = "auto"
	}
	if cfg.Display.Width == 0 {
		cfg.Display.Width = 90
	}
	if cfg.Display.Height == 0 {
		cfg.Display.Height = 24
	}
	if cfg.Display.Matrix.Rows == 0 {
		cfg.Display.Matrix.Rows = 32
	}
	if cfg.Display.Matrix.Cols == 0 {
		cfg.Display.Matrix.Cols = 64
	}
	if cfg.Display.Matrix.MaxLines == 0 {
		cfg.Display.Matrix.MaxLines = 4
	}
	if cfg.BusProvider != nil && cfg.BusProvider.Type == "" {
		cfg.BusProvider.Type = "vehicle_monitoring"
	}
	if cfg.SubwayProvider != nil && cfg.SubwayProvider.Type == "" {
		cfg.SubwayProvider.Type = "stop_times"
	}
}

// Sample is a starter configuration written by `mta-tracker config --init`.
const Sample = `# mta-tracker board configuration
bus_provider:
  base_url: "https://bustime.mta.info/api/siri/stop-monitoring.xml?key=##KEY##&version=2"
  api_key: "YOUR_BUS_TIME_KEY"
  endpoints:
    arrivals: "&MonitoringRef=STOP_ID"
bus_stops:
  - id: "MTA_305423"
    name: "Nassau Av/Driggs Ave"
subway_provider:
  base_url: "https://demo.transiter.dev/systems/us-ny-subway/"
  endpoints:
    stop: "stops/STOP_ID"
subway_stops:
  - id: "G26"
    name: "Greenpoint Av"
request:
  timeout: 30
  max_arrivals: 10
display:
  backend: auto
  switch_interval: 20
`

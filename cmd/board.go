package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SashaBoguraev/mta-tracker/pkg/config"
	"github.com/SashaBoguraev/mta-tracker/pkg/display"
	"github.com/SashaBoguraev/mta-tracker/pkg/logging"
	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Run the live arrival board",
	Long:  "Polls the configured providers on a fixed cadence and renders a countdown board, cycling between combined, subway, and bus views.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		viewFlag, _ := cmd.Flags().GetString("view")
		backend, _ := cmd.Flags().GetString("backend")
		once, _ := cmd.Flags().GetBool("once")
		interval, _ := cmd.Flags().GetInt("interval")
		levelFlag, _ := cmd.Flags().GetString("log-level")

		return runBoard(cfg, boardOptions{
			view:    transit.ParseViewMode(viewFlag),
			backend: backend,
			once:    once,
			// Pinning a view with --view disables the cycle timer.
			cycle:        !cmd.Flags().Changed("view"),
			pollInterval: time.Duration(interval) * time.Second,
			logLevel:     logging.ParseLevel(levelFlag),
		})
	},
}

type boardOptions struct {
	view         transit.ViewMode
	backend      string
	once         bool
	cycle        bool
	pollInterval time.Duration
	logLevel     slog.Level
}

// runBoard is the poll-render loop: fetch both providers, cycle the view mode
// on its own wall-clock timer, aggregate for the active view, and draw one
// frame. Cycles never overlap; every tick builds fresh records end to end.
func runBoard(cfg *config.Config, opts boardOptions) error {
	logger := logging.New(os.Stderr, opts.logLevel)

	if opts.backend != "" && opts.backend != "auto" {
		cfg.Display.Backend = opts.backend
	}
	renderer, err := display.Negotiate(os.Stdout, cfg.Display, display.DefaultTheme(), logger)
	if err != nil {
		return err
	}

	client := transit.NewClient(time.Duration(cfg.Request.TimeoutSeconds)*time.Second, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	modes := []transit.ViewMode{transit.ViewCombined, transit.ViewSubway, transit.ViewBus}
	modeIdx := 0
	for i, m := range modes {
		if m == opts.view {
			modeIdx = i
		}
	}
	switchInterval := time.Duration(cfg.Display.SwitchIntervalSeconds) * time.Second
	lastSwitch := time.Now()

	if opts.pollInterval <= 0 {
		opts.pollInterval = time.Second
	}
	ticker := time.NewTicker(opts.pollInterval)
	defer ticker.Stop()

	for {
		busList := transit.FetchArrivals(client, cfg.BusProvider, cfg.BusStops, cfg.Request)
		subwayList := transit.FetchArrivals(client, cfg.SubwayProvider, cfg.SubwayStops, cfg.Request)

		if opts.cycle && time.Since(lastSwitch) >= switchInterval {
			modeIdx = (modeIdx + 1) % len(modes)
			lastSwitch = time.Now()
		}
		mode := modes[modeIdx]

		renderer.SetView(mode)
		arrivals := transit.Aggregate(busList, subwayList, mode, cfg.Request.MaxArrivals)
		if err := renderer.Render(arrivals); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}

		if opts.once {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func init() {
	rootCmd.AddCommand(boardCmd)

	boardCmd.Flags().StringP("view", "v", "combined", "pin the board to one view (combined, subway, bus)")
	boardCmd.Flags().StringP("backend", "b", "auto", "display backend (auto, canvas, matrix)")
	boardCmd.Flags().Bool("once", false, "render a single frame and exit")
	boardCmd.Flags().IntP("interval", "i", 5, "poll interval in seconds")
	boardCmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
}

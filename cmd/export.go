package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/SashaBoguraev/mta-tracker/pkg/exporter"
	"github.com/SashaBoguraev/mta-tracker/pkg/logging"
	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
	"github.com/SashaBoguraev/mta-tracker/pkg/tui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the next arrivals to an ICS file",
	Long:  "Fetches a single snapshot of upcoming arrivals and writes them out as calendar events, one per predicted arrival.",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		viewFlag, _ := cmd.Flags().GetString("view")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := logging.New(os.Stderr, slog.LevelError)
		client := transit.NewClient(time.Duration(cfg.Request.TimeoutSeconds)*time.Second, logger)

		var arrivals []transit.ArrivalRecord
		_ = spinner.New().
			Title("Fetching upcoming arrivals...").
			Action(func() {
				busList := transit.FetchArrivals(client, cfg.BusProvider, cfg.BusStops, cfg.Request)
				subwayList := transit.FetchArrivals(client, cfg.SubwayProvider, cfg.SubwayStops, cfg.Request)
				arrivals = transit.Aggregate(busList, subwayList, transit.ParseViewMode(viewFlag), cfg.Request.MaxArrivals)
			}).
			Run()

		if len(arrivals) == 0 {
			return fmt.Errorf("no upcoming arrivals to export")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(arrivals, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Println(tui.Accent().Render(fmt.Sprintf("Exported %d arrivals to %s", len(arrivals), output)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "arrivals.ics", "Output file path")
	exportCmd.Flags().StringP("view", "v", "combined", "Which arrivals to export (combined, subway, bus)")
}

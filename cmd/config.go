package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SashaBoguraev/mta-tracker/pkg/config"
	"github.com/SashaBoguraev/mta-tracker/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or bootstrap the board configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		initFlag, _ := cmd.Flags().GetBool("init")

		path := configPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		if initFlag {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("refusing to overwrite existing config at %s", path)
			}
			if err := os.WriteFile(path, []byte(config.Sample), 0644); err != nil {
				return fmt.Errorf("failed to write starter config: %w", err)
			}
			fmt.Println(tui.Accent().Render(fmt.Sprintf("Wrote starter configuration to %s. Add your provider keys and stops.", path)))
			return nil
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("Config: %s\n", path)
		describeProvider("Bus provider", cfg.BusProvider, len(cfg.BusStops))
		describeProvider("Subway provider", cfg.SubwayProvider, len(cfg.SubwayStops))
		fmt.Printf("Display backend: %s\n", cfg.Display.Backend)
		fmt.Printf("Max arrivals per cycle: %d\n", cfg.Request.MaxArrivals)
		return nil
	},
}

func describeProvider(label string, p *config.Provider, stops int) {
	if p == nil {
		fmt.Printf("%s: not configured\n", label)
		return
	}
	fmt.Printf("%s: %s adapter, %d stop(s)\n", label, p.Type, stops)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("init", false, "write a starter configuration file")
}

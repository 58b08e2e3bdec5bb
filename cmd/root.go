package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SashaBoguraev/mta-tracker/pkg/config"
	"github.com/SashaBoguraev/mta-tracker/pkg/tui"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mta-tracker",
	Short: "A live transit arrival countdown board",
	Long: `mta-tracker polls bus and subway providers, normalizes their arrival
predictions into one schema, and renders a live countdown board either in a
terminal window or on an LED matrix panel.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(tui.Error().Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the board config (default: board.yml, then ~/.mta-tracker.yml)")
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SashaBoguraev/mta-tracker/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the board through an interactive picker",
	Long:  `Choose the view and display backend in a form, then start the live board.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		choices, err := tui.RunLauncher(cfg.Display.AccentColor)
		if err != nil {
			return err
		}

		return runBoard(cfg, boardOptions{
			view:         choices.View,
			backend:      choices.Backend,
			cycle:        choices.Cycle,
			pollInterval: 5 * time.Second,
			logLevel:     slog.LevelWarn,
		})
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

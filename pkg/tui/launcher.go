package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/SashaBoguraev/mta-tracker/pkg/transit"
)

// BoardChoices is what the interactive launcher hands back to the board loop.
type BoardChoices struct {
	View    transit.ViewMode
	Backend string
	Cycle   bool
}

// RunLauncher asks which arrivals to show and on which backend. The board
// loop itself stays in cmd; this form only collects the choices.
func RunLauncher(accentColor string) (BoardChoices, error) {
	view := string(transit.ViewCombined)
	backend := "auto"
	cycle := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which arrivals should the board show?").
				Options(
					huh.NewOption("🚌 + 🚇 Combined", string(transit.ViewCombined)),
					huh.NewOption("🚇 Subway only", string(transit.ViewSubway)),
					huh.NewOption("🚌 Buses only", string(transit.ViewBus)),
				).
				Value(&view),

			huh.NewSelect[string]().
				Title("Which display backend?").
				Options(
					huh.NewOption("Auto-detect", "auto"),
					huh.NewOption("Terminal canvas", "canvas"),
					huh.NewOption("LED matrix", "matrix"),
				).
				Value(&backend),

			huh.NewConfirm().
				Title("Cycle through views automatically?").
				Value(&cycle),
		),
	).WithTheme(GetTheme(accentColor))

	if err := form.Run(); err != nil {
		return BoardChoices{}, err
	}

	return BoardChoices{
		View:    transit.ParseViewMode(view),
		Backend: backend,
		Cycle:   cycle,
	}, nil
}

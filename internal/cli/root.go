package cli

import (
	"github.com/alexanderramin/travelscape/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Itinerary service.ItineraryService
	Setup     service.SetupService
	Export    service.ExportService

	// IsInteractive reports whether stdin is a terminal. With no
	// subcommand and an interactive terminal the root launches the board.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "travelscape" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "travelscape",
		Short: "Trip itinerary planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBoard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSetupCmd(app),
		newPlanCmd(app),
		newDayCmd(app),
		newActivityCmd(app),
		newProgressCmd(app),
		newExportCmd(app),
	)

	return root
}

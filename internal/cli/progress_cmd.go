package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/travelscape/internal/cli/formatter"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show how much of the trip is planned",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			th := formatter.ThemeFor(app.Setup.Get(ctx).TripType)
			fmt.Println(formatter.FormatProgress(th, planner.Progress(snap.Days)))
			return nil
		},
	}
}

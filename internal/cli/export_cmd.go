package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the itinerary as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			setup := app.Setup.Get(ctx)

			doc := app.Export.Render(setup.Destination, snap.Days)
			if out == "" {
				fmt.Print(doc)
				return nil
			}
			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Printf("Exported itinerary to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")

	return cmd
}

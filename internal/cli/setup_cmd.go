package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/travelscape/internal/cli/formatter"
	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSetupCmd(app *App) *cobra.Command {
	var destination, tripType, start string
	var days int
	var fresh bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up the trip (destination, type, days, start date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			setup := app.Setup.Get(ctx)
			if cmd.Flags().Changed("destination") {
				setup.Destination = destination
			}
			if cmd.Flags().Changed("type") {
				setup.TripType = domain.TripType(tripType)
			}
			if cmd.Flags().Changed("days") {
				setup.NumberOfDays = days
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				setup.StartDate = startDate
			}

			// With no flags at all, run the interactive wizard instead.
			if cmd.Flags().NFlag() == 0 {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("no terminal; pass --destination, --type, --days and --start")
				}
				var err error
				setup, fresh, err = runSetupWizard(setup)
				if err != nil {
					return err
				}
			}

			if err := app.Setup.Put(ctx, setup); err != nil {
				return err
			}
			fmt.Printf("Trip set up: %s, %s, %d days\n", setup.Destination, setup.TripType, setup.NumberOfDays)

			if fresh {
				snap := planner.NewSnapshot(planner.SeedDays(setup))
				if err := app.Itinerary.Save(ctx, snap); err != nil {
					return err
				}
				fmt.Printf("Started a fresh itinerary with %d empty days.\n", len(snap.Days))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Trip destination")
	cmd.Flags().StringVar(&tripType, "type", "", "Trip type (beaches|mountains|cities)")
	cmd.Flags().IntVar(&days, "days", 0, "Number of days")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "Replace the itinerary with empty days seeded from this setup")

	return cmd
}

// runSetupWizard collects the trip parameters with a huh form, seeded with
// the current setup values.
func runSetupWizard(current domain.TripSetup) (domain.TripSetup, bool, error) {
	destination := current.Destination
	tripType := string(current.TripType)
	days := strconv.Itoa(current.NumberOfDays)
	start := current.StartDate.Format("2006-01-02")
	fresh := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where are you going?").
				Placeholder("Bali Adventure").
				Value(&destination).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("destination is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("What kind of trip?").
				Options(
					huh.NewOption("Beaches", "beaches"),
					huh.NewOption("Mountains", "mountains"),
					huh.NewOption("Cities", "cities"),
				).
				Value(&tripType),
			huh.NewInput().
				Title("How many days?").
				Value(&days).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a number of days, 1 or more")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&start).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("enter a date like 2026-09-14")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Start a fresh itinerary for this trip?").
				Value(&fresh),
		),
	).WithTheme(huhTheme(formatter.ThemeFor(domain.TripType(tripType))))

	if err := form.Run(); err != nil {
		return current, false, fmt.Errorf("running setup wizard: %w", err)
	}

	numberOfDays, _ := strconv.Atoi(days)
	startDate, _ := time.Parse("2006-01-02", start)
	return domain.TripSetup{
		Destination:  destination,
		TripType:     domain.TripType(tripType),
		NumberOfDays: numberOfDays,
		StartDate:    startDate,
	}, fresh, nil
}

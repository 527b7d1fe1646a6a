package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/travelscape/internal/cli/formatter"
	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage days",
	}

	cmd.AddCommand(
		newDayListCmd(app),
		newDayAddCmd(app),
		newDayRenameCmd(app),
		newDayMoodCmd(app),
	)

	return cmd
}

func newDayListCmd(app *App) *cobra.Command {
	var timeline bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List days with their activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			th := formatter.ThemeFor(app.Setup.Get(ctx).TripType)
			if timeline {
				fmt.Println(formatter.FormatTimeline(th, snap.Days))
			} else {
				fmt.Println(formatter.FormatDayList(th, snap.Days))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&timeline, "timeline", false, "order each day chronologically by start time")
	return cmd
}

func newDayAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append a new day to the trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx).AddDay()
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Added %s\n", snap.Days[len(snap.Days)-1].Title)
			return nil
		},
	}
}

func newDayRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename DAY TITLE",
		Short: "Rename a day",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			day, err := resolveDay(snap, args[0])
			if err != nil {
				return err
			}

			title := strings.Join(args[1:], " ")
			snap = snap.RenameDay(day.ID, title)
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Renamed %s to %q\n", day.Title, title)
			return nil
		},
	}
}

func newDayMoodCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mood DAY [LABEL]",
		Short: "Set a day's mood (omit the label to clear it)",
		Long: `Set a day's mood to one of: Chill, Adventurous, Relaxing,
Fun & Shopping, Sightseeing, Foodie. Without a label the mood is cleared.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			day, err := resolveDay(snap, args[0])
			if err != nil {
				return err
			}

			var mood *domain.Mood
			if len(args) > 1 {
				label := strings.Join(args[1:], " ")
				m, ok := domain.MoodByLabel(label)
				if !ok {
					labels := make([]string, len(domain.Moods))
					for i, cm := range domain.Moods {
						labels[i] = cm.Label
					}
					return fmt.Errorf("unknown mood %q (one of: %s)", label, strings.Join(labels, ", "))
				}
				mood = &m
			}

			if err := app.Itinerary.SetMood(ctx, day.ID, mood); err != nil {
				return err
			}
			if mood == nil {
				fmt.Printf("Cleared mood for %s\n", day.Title)
			} else {
				fmt.Printf("%s is now %s %s\n", day.Title, mood.Emoji, mood.Label)
			}
			return nil
		},
	}
}

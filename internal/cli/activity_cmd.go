package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/travelscape/internal/cli/formatter"
	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Manage activities",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityAddCmd(app),
		newActivityEditCmd(app),
		newActivityRemoveCmd(app),
		newActivityMoveCmd(app),
		newActivityUndoCmd(app),
		newActivityTodoCmd(app),
	)

	return cmd
}

// draftFlags binds the activity field flags shared by add and edit.
func draftFlags(cmd *cobra.Command, title, start, end, location, notes, actType *string, tags *[]string) {
	cmd.Flags().StringVar(title, "title", "", "Activity title")
	cmd.Flags().StringVar(start, "start", "", "Start time (e.g. 14:00)")
	cmd.Flags().StringVar(end, "end", "", "End time")
	cmd.Flags().StringVar(location, "location", "", "Location")
	cmd.Flags().StringVar(notes, "notes", "", "Notes")
	cmd.Flags().StringVar(actType, "type", "", "Type (food|travel|explore|accommodation|activity)")
	cmd.Flags().StringSliceVar(tags, "tags", nil, "Tags (comma-separated)")
}

// applyDraftFlags copies changed flag values onto the draft.
func applyDraftFlags(cmd *cobra.Command, d *planner.Draft, title, start, end, location, notes, actType string, tags []string) error {
	if cmd.Flags().Changed("title") {
		d.Activity.Title = title
	}
	if cmd.Flags().Changed("start") {
		d.Activity.TimeStart = start
	}
	if cmd.Flags().Changed("end") {
		d.Activity.TimeEnd = end
	}
	if cmd.Flags().Changed("location") {
		d.Activity.Location = location
	}
	if cmd.Flags().Changed("notes") {
		d.Activity.Notes = notes
	}
	if cmd.Flags().Changed("type") {
		if !domain.ValidActivityTypes[actType] {
			return fmt.Errorf("invalid type %q (one of: food, travel, explore, accommodation, activity)", actType)
		}
		d.Activity.Type = domain.ActivityType(actType)
	}
	if cmd.Flags().Changed("tags") {
		d.Activity.Tags = nil
		for _, tag := range tags {
			d.AddTag(tag)
		}
	}
	return nil
}

func newActivityListCmd(app *App) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "list [DAY]",
		Short: "List activities, optionally for one day or filtered by tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			th := formatter.ThemeFor(app.Setup.Get(ctx).TripType)

			days := snap.Days
			if len(args) == 1 {
				day, err := resolveDay(snap, args[0])
				if err != nil {
					return err
				}
				days = []domain.Day{day}
			}

			if len(tags) > 0 {
				filtered := make([]domain.Day, len(days))
				for i, d := range days {
					fd := d.Clone()
					fd.Activities = planner.FilterActivities(d.Activities, tags)
					filtered[i] = fd
				}
				days = filtered
			}

			fmt.Println(formatter.FormatDayList(th, days))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Show only activities matching these tags (a type counts as a tag)")

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var title, start, end, location, notes, actType string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add DAY",
		Short: "Add an activity to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			day, err := resolveDay(snap, args[0])
			if err != nil {
				return err
			}

			draft := planner.NewDraft(day.ID)
			if err := applyDraftFlags(cmd, draft, title, start, end, location, notes, actType, tags); err != nil {
				return err
			}

			snap, err = draft.Commit(snap)
			if err != nil {
				return err
			}
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Added %q to %s\n", draft.Activity.Title, day.Title)
			return nil
		},
	}

	draftFlags(cmd, &title, &start, &end, &location, &notes, &actType, &tags)
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newActivityEditCmd(app *App) *cobra.Command {
	var title, start, end, location, notes, actType string
	var tags []string

	cmd := &cobra.Command{
		Use:   "edit DAY POS",
		Short: "Edit an activity in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			day, err := resolveDay(snap, args[0])
			if err != nil {
				return err
			}
			a, err := resolveActivity(day, args[1])
			if err != nil {
				return err
			}

			draft := planner.EditDraft(day.ID, a)
			if err := applyDraftFlags(cmd, draft, title, start, end, location, notes, actType, tags); err != nil {
				return err
			}

			snap, err = draft.Commit(snap)
			if err != nil {
				return err
			}
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Updated %q\n", draft.Activity.Title)
			return nil
		},
	}

	draftFlags(cmd, &title, &start, &end, &location, &notes, &actType, &tags)

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm DAY POS",
		Aliases: []string{"remove"},
		Short:   "Remove an activity",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)
			day, err := resolveDay(snap, args[0])
			if err != nil {
				return err
			}
			a, err := resolveActivity(day, args[1])
			if err != nil {
				return err
			}

			snap, removed, ok := snap.DeleteActivity(day.ID, a.ID)
			if !ok {
				return fmt.Errorf("activity %q not found on %s", a.Title, day.Title)
			}
			if err := app.Itinerary.StashRemoved(ctx, day.ID, removed); err != nil {
				return err
			}
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Removed %q (restore with 'travelscape activity undo')\n", removed.Title)
			return nil
		},
	}
}

func newActivityUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Restore the most recently removed activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)

			snap, restored, ok, err := app.Itinerary.RestoreRemoved(ctx, snap)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Nothing to undo.")
				return nil
			}
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Restored %q\n", restored.Title)
			return nil
		},
	}
}

func newActivityMoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move DAY POS TODAY [TOPOS]",
		Short: "Move an activity within a day or to another day",
		Long: `Move an activity. Positions are 1-based; omit TOPOS to drop the
activity at the end of the target day.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap := app.Itinerary.Load(ctx)

			fromDay, err := resolveDay(snap, args[0])
			if err != nil {
				return err
			}
			a, err := resolveActivity(fromDay, args[1])
			if err != nil {
				return err
			}
			toDay, err := resolveDay(snap, args[2])
			if err != nil {
				return err
			}

			toIndex := len(toDay.Activities)
			if len(args) == 4 {
				n, err := strconv.Atoi(args[3])
				if err != nil || n < 1 {
					return fmt.Errorf("target position %q must be a positive number", args[3])
				}
				toIndex = n - 1
			}

			fromIndex := -1
			for i := range fromDay.Activities {
				if fromDay.Activities[i].ID == a.ID {
					fromIndex = i
				}
			}

			snap, outcome := snap.Move(planner.MoveRequest{
				FromDay:   fromDay.ID,
				FromIndex: fromIndex,
				ToDay:     toDay.ID,
				ToIndex:   toIndex,
			})
			if !outcome.Changed() {
				fmt.Println("Nothing moved.")
				return nil
			}
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			if outcome.Kind == planner.MoveCrossDay {
				fmt.Printf("Moved %q to %s\n", a.Title, outcome.DestTitle)
			} else {
				fmt.Printf("Reordered %q within %s\n", a.Title, fromDay.Title)
			}
			return nil
		},
	}

	return cmd
}

func newActivityTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage an activity's checklist",
	}

	list := &cobra.Command{
		Use:   "list DAY POS",
		Short: "Show the checklist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, a, err := loadActivity(app, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatChecklist(a.Checklist))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add DAY POS TEXT",
		Short: "Add a checklist item",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, day, a, err := loadActivity(app, args[0], args[1])
			if err != nil {
				return err
			}

			text := strings.Join(args[2:], " ")
			items := append(append([]domain.ChecklistItem(nil), a.Checklist...), planner.NewChecklistItem(text))
			snap = snap.ReplaceChecklist(day.ID, a.ID, items)
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Added checklist item %q to %q\n", text, a.Title)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle DAY POS ITEM",
		Short: "Toggle a checklist item done/undone",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, day, a, err := loadActivity(app, args[0], args[1])
			if err != nil {
				return err
			}
			i, err := checklistIndex(a, args[2])
			if err != nil {
				return err
			}

			items := append([]domain.ChecklistItem(nil), a.Checklist...)
			items[i].Completed = !items[i].Completed
			snap = snap.ReplaceChecklist(day.ID, a.ID, items)
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			state := "not done"
			if items[i].Completed {
				state = "done"
			}
			fmt.Printf("%q is now %s\n", items[i].Text, state)
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm DAY POS ITEM",
		Short: "Remove a checklist item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, day, a, err := loadActivity(app, args[0], args[1])
			if err != nil {
				return err
			}
			i, err := checklistIndex(a, args[2])
			if err != nil {
				return err
			}

			removed := a.Checklist[i]
			items := append([]domain.ChecklistItem(nil), a.Checklist[:i]...)
			items = append(items, a.Checklist[i+1:]...)
			snap = snap.ReplaceChecklist(day.ID, a.ID, items)
			if err := app.Itinerary.Save(ctx, snap); err != nil {
				return err
			}
			fmt.Printf("Removed checklist item %q\n", removed.Text)
			return nil
		},
	}

	cmd.AddCommand(list, add, toggle, rm)
	return cmd
}

// loadActivity resolves DAY and POS arguments against a fresh snapshot.
func loadActivity(app *App, dayArg, posArg string) (planner.Snapshot, domain.Day, domain.Activity, error) {
	snap := app.Itinerary.Load(context.Background())
	day, err := resolveDay(snap, dayArg)
	if err != nil {
		return snap, domain.Day{}, domain.Activity{}, err
	}
	a, err := resolveActivity(day, posArg)
	if err != nil {
		return snap, day, domain.Activity{}, err
	}
	return snap, day, a, nil
}

func checklistIndex(a domain.Activity, input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(a.Checklist) {
		return 0, fmt.Errorf("%q has no checklist item %s (it has %d)", a.Title, input, len(a.Checklist))
	}
	return n - 1, nil
}

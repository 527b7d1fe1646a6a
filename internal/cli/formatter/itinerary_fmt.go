package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/lookup"
)

// FormatDayList renders the day sequence for `day list` and `activity list`.
func FormatDayList(th Theme, days []domain.Day) string {
	var b strings.Builder
	for i, d := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDayHeading(th, d))
		b.WriteString("\n")
		if len(d.Activities) == 0 {
			b.WriteString(Dim("  (no activities)") + "\n")
			continue
		}
		for j, a := range d.Activities {
			b.WriteString(FormatActivityLine(th, j+1, a))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDayHeading renders a day title with its mood, if set.
func FormatDayHeading(th Theme, d domain.Day) string {
	heading := th.Header.Render(d.Title)
	if d.Mood != nil {
		heading += "  " + fmt.Sprintf("%s %s", d.Mood.Emoji, Dim(d.Mood.Label))
	}
	return heading
}

// FormatActivityLine renders one numbered activity row: time range, title,
// type badge, weather icon when the location is in the lookup table, and a
// checklist completion count when a checklist exists.
func FormatActivityLine(th Theme, n int, a domain.Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %d. ", n)

	if a.TimeStart != "" {
		span := a.TimeStart
		if a.TimeEnd != "" {
			span += "–" + a.TimeEnd
		}
		b.WriteString(Dim(span) + "  ")
	}

	b.WriteString(Bold(a.Title))
	b.WriteString("  " + th.Badge.Render("["+string(a.Type)+"]"))

	if w, ok := lookup.WeatherFor(a.Location); ok {
		fmt.Fprintf(&b, "  %s %s", w.Icon, Dim(w.Temp))
	}
	if c, ok := lookup.Coords(a.Location); ok {
		b.WriteString("  " + Dim(FormatCoords(c)))
	}
	if len(a.Tags) > 0 {
		b.WriteString("  " + Dim("#"+strings.Join(a.Tags, " #")))
	}
	if len(a.Checklist) > 0 {
		done := 0
		for _, item := range a.Checklist {
			if item.Completed {
				done++
			}
		}
		fmt.Fprintf(&b, "  %s", Dim(fmt.Sprintf("☑ %d/%d", done, len(a.Checklist))))
	}
	return b.String()
}

// FormatCoords renders a lookup hit as "lat, lng" to four decimal places.
func FormatCoords(c lookup.Coordinates) string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}

// FormatTimeline renders the trip as a chronological timeline: each day's
// activities ordered by start time, untimed ones trailing in board order.
func FormatTimeline(th Theme, days []domain.Day) string {
	var b strings.Builder
	for i, d := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDayHeading(th, d))
		b.WriteString("\n")
		if len(d.Activities) == 0 {
			b.WriteString(Dim("  (no activities)") + "\n")
			continue
		}
		acts := append([]domain.Activity(nil), d.Activities...)
		sort.SliceStable(acts, func(x, y int) bool {
			if acts[x].TimeStart == "" {
				return false
			}
			if acts[y].TimeStart == "" {
				return true
			}
			return acts[x].TimeStart < acts[y].TimeStart
		})
		for _, a := range acts {
			start := a.TimeStart
			if start == "" {
				start = "--:--"
			}
			fmt.Fprintf(&b, "  %s │ %s", Dim(start), Bold(a.Title))
			if a.Location != "" {
				b.WriteString("  " + Dim("@ "+a.Location))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatChecklist renders an activity's checklist items for `activity todo list`.
func FormatChecklist(items []domain.ChecklistItem) string {
	if len(items) == 0 {
		return Dim("(no checklist items)")
	}
	var b strings.Builder
	for i, item := range items {
		box := "[ ]"
		if item.Completed {
			box = StyleGreen.Render("[x]")
		}
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, box, item.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

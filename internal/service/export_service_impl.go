package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/travelscape/internal/domain"
)

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// Render writes the full day sequence, nested activities and checklists
// included, as plain structured text. This is the write-only export; there
// is no importer for it.
func (s *exportService) Render(destination string, days []domain.Day) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - Itinerary\n", destination)
	b.WriteString(strings.Repeat("=", len([]rune(destination))+12) + "\n")

	for _, day := range days {
		b.WriteString("\n" + day.Title)
		if day.Mood != nil {
			fmt.Fprintf(&b, "  (%s %s)", day.Mood.Emoji, day.Mood.Label)
		}
		b.WriteString("\n")

		if len(day.Activities) == 0 {
			b.WriteString("  (no activities planned)\n")
			continue
		}
		for i, a := range day.Activities {
			fmt.Fprintf(&b, "  %d. %s%s  [%s]\n", i+1, timeRange(a), a.Title, a.Type)
			if a.Location != "" {
				fmt.Fprintf(&b, "     Location: %s\n", a.Location)
			}
			if a.Notes != "" {
				fmt.Fprintf(&b, "     Notes: %s\n", a.Notes)
			}
			if len(a.Tags) > 0 {
				fmt.Fprintf(&b, "     Tags: %s\n", strings.Join(a.Tags, ", "))
			}
			for _, item := range a.Checklist {
				box := "[ ]"
				if item.Completed {
					box = "[x]"
				}
				fmt.Fprintf(&b, "     %s %s\n", box, item.Text)
			}
		}
	}
	return b.String()
}

func timeRange(a domain.Activity) string {
	switch {
	case a.TimeStart != "" && a.TimeEnd != "":
		return fmt.Sprintf("%s–%s  ", a.TimeStart, a.TimeEnd)
	case a.TimeStart != "":
		return a.TimeStart + "  "
	default:
		return ""
	}
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/travelscape/internal/planner"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a progress bar like [████░░░░]  50%. The bar is
// colored by percentage: green from 66%, yellow from 33%, red below.
func RenderBar(percent int, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if width < 2 {
		width = 2
	}

	filled := percent * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if percent < 33 {
		style = StyleRed
	} else if percent < 66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), percent)
}

// FormatProgress renders the planning completion summary: bar, planned/total
// count and the motivational line.
func FormatProgress(th Theme, r planner.ProgressReport) string {
	var b strings.Builder
	b.WriteString(th.Section("Trip Progress"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %d of %d days planned\n",
		RenderBar(r.Percent, 20), r.PlannedDays, r.TotalDays)
	b.WriteString(Dim(r.Message()))
	return b.String()
}

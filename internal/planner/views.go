package planner

import (
	"math"

	"github.com/alexanderramin/travelscape/internal/domain"
)

// FilterActivities returns the activities matching at least one selected
// tag, in their input order. An activity's type counts as an implicit tag.
// With no tags selected the input comes back as-is: the default state is
// "no filter", not "show nothing".
func FilterActivities(activities []domain.Activity, selected []string) []domain.Activity {
	if len(selected) == 0 {
		return activities
	}
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		for _, tag := range selected {
			if a.HasTag(tag) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// ProgressReport is the planning completion summary shown above the board.
type ProgressReport struct {
	PlannedDays int
	TotalDays   int
	Percent     int
}

// Progress counts the days that have at least one activity. Percent is the
// rounded share of planned days, 0 for an empty trip.
func Progress(days []domain.Day) ProgressReport {
	r := ProgressReport{TotalDays: len(days)}
	for _, d := range days {
		if len(d.Activities) > 0 {
			r.PlannedDays++
		}
	}
	if r.TotalDays > 0 {
		r.Percent = int(math.Round(float64(r.PlannedDays) / float64(r.TotalDays) * 100))
	}
	return r
}

// Message returns the motivational line for the progress bar.
func (r ProgressReport) Message() string {
	switch {
	case r.Percent == 100:
		return "Perfect! All days are planned."
	case r.Percent >= 50:
		return "You're making great progress!"
	case r.Percent > 0:
		return "Let's add more adventures!"
	default:
		return "Start planning your journey!"
	}
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
)

// resolveDay maps user input to a day on the board. Accepted forms, in
// order: a 1-based day number ("3"), a day id ("day-3"), or a unique
// case-insensitive title prefix ("ubud").
func resolveDay(snap planner.Snapshot, input string) (domain.Day, error) {
	if input == "" {
		return domain.Day{}, fmt.Errorf("day is required")
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(snap.Days) {
			return domain.Day{}, fmt.Errorf("day %d is out of range (1-%d)", n, len(snap.Days))
		}
		return snap.Days[n-1], nil
	}

	if i := snap.DayByID(input); i != -1 {
		return snap.Days[i], nil
	}

	var matches []domain.Day
	for _, d := range snap.Days {
		if strings.HasPrefix(strings.ToLower(d.Title), strings.ToLower(input)) {
			matches = append(matches, d)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Day{}, fmt.Errorf("day not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.Day{}, fmt.Errorf("day title prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveActivity maps a 1-based position within a day to the activity.
func resolveActivity(day domain.Day, input string) (domain.Activity, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity position %q must be a number", input)
	}
	if n < 1 || n > len(day.Activities) {
		return domain.Activity{}, fmt.Errorf("%s has no activity %d (it has %d)", day.Title, n, len(day.Activities))
	}
	return day.Activities[n-1], nil
}

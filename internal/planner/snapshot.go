// Package planner implements the itinerary state engine: an immutable
// snapshot of the day list plus the pure operations the board performs on
// it (reordering, editing, undo, derived views). The package does no I/O;
// persistence and presentation live elsewhere.
package planner

import "github.com/alexanderramin/travelscape/internal/domain"

// Snapshot is one immutable version of the itinerary. Every mutating
// operation returns a new Snapshot; days the operation did not touch are
// shared with the previous version, so a caller holding an older Snapshot
// keeps a fully consistent view.
type Snapshot struct {
	Days []domain.Day
}

// NewSnapshot wraps a day list in a Snapshot. The slice is owned by the
// snapshot afterwards; callers must not mutate it.
func NewSnapshot(days []domain.Day) Snapshot {
	return Snapshot{Days: days}
}

// DayByID returns the index of the day with the given id, or -1.
func (s Snapshot) DayByID(dayID string) int {
	for i, d := range s.Days {
		if d.ID == dayID {
			return i
		}
	}
	return -1
}

// TotalActivities counts activities across all days.
func (s Snapshot) TotalActivities() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Activities)
	}
	return n
}

// replaceDay returns a copy of the snapshot with the day at index i swapped
// out. Only the outer slice is reallocated; sibling days stay shared.
func (s Snapshot) replaceDay(i int, day domain.Day) Snapshot {
	days := make([]domain.Day, len(s.Days))
	copy(days, s.Days)
	days[i] = day
	return Snapshot{Days: days}
}

// AddDay appends a new auto-numbered day. Existing days are untouched.
func (s Snapshot) AddDay() Snapshot {
	days := make([]domain.Day, len(s.Days), len(s.Days)+1)
	copy(days, s.Days)
	return Snapshot{Days: append(days, domain.NewDay(len(s.Days)+1))}
}

// RenameDay replaces the title of the matching day. Unknown ids are a
// silent no-op.
func (s Snapshot) RenameDay(dayID, title string) Snapshot {
	i := s.DayByID(dayID)
	if i == -1 {
		return s
	}
	day := s.Days[i]
	day.Title = title
	return s.replaceDay(i, day)
}

// SetDayMood replaces the mood of the matching day. A nil mood clears it.
// Unknown ids are a silent no-op.
func (s Snapshot) SetDayMood(dayID string, mood *domain.Mood) Snapshot {
	i := s.DayByID(dayID)
	if i == -1 {
		return s
	}
	day := s.Days[i]
	if mood != nil {
		m := *mood
		day.Mood = &m
	} else {
		day.Mood = nil
	}
	return s.replaceDay(i, day)
}

// DeleteActivity removes the activity from the given day and returns the
// removed value so the caller can record it for undo. The third return is
// false when the day or activity does not exist, in which case the snapshot
// is returned unchanged.
func (s Snapshot) DeleteActivity(dayID, activityID string) (Snapshot, domain.Activity, bool) {
	i := s.DayByID(dayID)
	if i == -1 {
		return s, domain.Activity{}, false
	}
	day := s.Days[i]
	j := day.IndexOfActivity(activityID)
	if j == -1 {
		return s, domain.Activity{}, false
	}
	removed := day.Activities[j]
	acts := make([]domain.Activity, 0, len(day.Activities)-1)
	acts = append(acts, day.Activities[:j]...)
	acts = append(acts, day.Activities[j+1:]...)
	day.Activities = acts
	return s.replaceDay(i, day), removed, true
}

// AppendActivity adds the activity at the end of the given day's schedule.
// Used by undo restore. Unknown day ids are a silent no-op.
func (s Snapshot) AppendActivity(dayID string, a domain.Activity) Snapshot {
	i := s.DayByID(dayID)
	if i == -1 {
		return s
	}
	day := s.Days[i]
	acts := make([]domain.Activity, len(day.Activities), len(day.Activities)+1)
	copy(acts, day.Activities)
	day.Activities = append(acts, a)
	return s.replaceDay(i, day)
}

// ReplaceChecklist swaps the checklist of a committed activity in place.
// Checklist edits are quick commits from the card itself: they bypass the
// editor draft so ticking a box never requires opening the full form.
func (s Snapshot) ReplaceChecklist(dayID, activityID string, items []domain.ChecklistItem) Snapshot {
	i := s.DayByID(dayID)
	if i == -1 {
		return s
	}
	day := s.Days[i]
	j := day.IndexOfActivity(activityID)
	if j == -1 {
		return s
	}
	acts := make([]domain.Activity, len(day.Activities))
	copy(acts, day.Activities)
	a := acts[j]
	a.Checklist = append([]domain.ChecklistItem(nil), items...)
	acts[j] = a
	day.Activities = acts
	return s.replaceDay(i, day)
}

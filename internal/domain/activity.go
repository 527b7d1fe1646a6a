package domain

// Activity is a single planned item within a day. TimeStart and TimeEnd are
// advisory wall-clock strings ("14:00"); they are never validated against
// each other or against sibling activities. Location is an exact-match key
// into the mock weather and coordinate tables.
type Activity struct {
	ID        string
	Title     string
	TimeStart string
	TimeEnd   string
	Location  string
	Notes     string
	Tags      []string
	Type      ActivityType
	Checklist []ChecklistItem
}

// Clone returns a deep copy of the activity, including tags and checklist.
func (a Activity) Clone() Activity {
	out := a
	if a.Tags != nil {
		out.Tags = append([]string(nil), a.Tags...)
	}
	if a.Checklist != nil {
		out.Checklist = append([]ChecklistItem(nil), a.Checklist...)
	}
	return out
}

// HasTag reports whether tag appears in the activity's tag list or matches
// its type. The type-as-tag behavior is what the filter relies on.
func (a Activity) HasTag(tag string) bool {
	if string(a.Type) == tag {
		return true
	}
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ChecklistItem is one packing/preparation entry owned by an activity.
type ChecklistItem struct {
	ID        string
	Text      string
	Completed bool
}

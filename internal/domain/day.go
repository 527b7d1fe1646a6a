package domain

import "fmt"

// Day is one column of the itinerary board. Activities is the schedule
// order within the day; reordering it is the whole point of the planner.
type Day struct {
	ID         string
	Title      string
	Activities []Activity
	Mood       *Mood
}

// NewDay builds the nth day of a trip (1-based), with the auto-numbered
// id and title the board uses for appended days.
func NewDay(n int) Day {
	return Day{
		ID:    fmt.Sprintf("day-%d", n),
		Title: fmt.Sprintf("Day %d", n),
	}
}

// Clone returns a deep copy of the day. The activities slice and every
// activity's nested slices are copied, so mutations on the clone never
// leak into the original.
func (d Day) Clone() Day {
	out := d
	if d.Mood != nil {
		m := *d.Mood
		out.Mood = &m
	}
	if d.Activities != nil {
		out.Activities = make([]Activity, len(d.Activities))
		for i, a := range d.Activities {
			out.Activities[i] = a.Clone()
		}
	}
	return out
}

// IndexOfActivity returns the position of the activity with the given id,
// or -1 when the day does not contain it.
func (d Day) IndexOfActivity(activityID string) int {
	for i, a := range d.Activities {
		if a.ID == activityID {
			return i
		}
	}
	return -1
}

// Mood summarizes a day's intended vibe, independent of its activities.
// Gradient is a presentation hint carried through persistence untouched.
type Mood struct {
	Emoji    string
	Label    string
	Gradient string
}

// Moods is the fixed catalog offered by the mood picker.
var Moods = []Mood{
	{Emoji: "🧘", Label: "Chill", Gradient: "from-blue-500/20 to-blue-600/20"},
	{Emoji: "🥾", Label: "Adventurous", Gradient: "from-green-500/20 to-green-600/20"},
	{Emoji: "🏖️", Label: "Relaxing", Gradient: "from-yellow-500/20 to-yellow-600/20"},
	{Emoji: "🛍️", Label: "Fun & Shopping", Gradient: "from-pink-500/20 to-pink-600/20"},
	{Emoji: "📸", Label: "Sightseeing", Gradient: "from-indigo-500/20 to-indigo-600/20"},
	{Emoji: "🍽️", Label: "Foodie", Gradient: "from-red-500/20 to-orange-500/20"},
}

// MoodByLabel finds a catalog mood by its label.
func MoodByLabel(label string) (Mood, bool) {
	for _, m := range Moods {
		if m.Label == label {
			return m, true
		}
	}
	return Mood{}, false
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasTag(t *testing.T) {
	a := Activity{
		Type: ActivityFood,
		Tags: []string{"booked", "must-do"},
	}
	cases := []struct {
		tag  string
		want bool
	}{
		{"booked", true},
		{"must-do", true},
		{"food", true}, // type acts as an implicit tag
		{"planned", false},
		{"travel", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, a.HasTag(tc.tag), "tag=%s", tc.tag)
	}
}

func TestActivityClone_Independent(t *testing.T) {
	a := Activity{
		ID:    "activity-1",
		Title: "Surfing Lesson",
		Tags:  []string{"booked"},
		Type:  ActivityGeneric,
		Checklist: []ChecklistItem{
			{ID: "checklist-1", Text: "Swimwear"},
		},
	}
	b := a.Clone()
	b.Tags[0] = "planned"
	b.Checklist[0].Completed = true

	assert.Equal(t, "booked", a.Tags[0], "clone tags must not alias the original")
	assert.False(t, a.Checklist[0].Completed, "clone checklist must not alias the original")
}

func TestDayClone_Independent(t *testing.T) {
	d := Day{
		ID:    "day-1",
		Title: "Day 1",
		Mood:  &Mood{Emoji: "🧘", Label: "Chill"},
		Activities: []Activity{
			{ID: "activity-1", Title: "Temple Tour", Tags: []string{"explore"}},
		},
	}
	c := d.Clone()
	c.Activities[0].Tags[0] = "food"
	c.Mood.Label = "Foodie"

	assert.Equal(t, "explore", d.Activities[0].Tags[0])
	assert.Equal(t, "Chill", d.Mood.Label)
}

func TestNewDay(t *testing.T) {
	d := NewDay(3)
	assert.Equal(t, "day-3", d.ID)
	assert.Equal(t, "Day 3", d.Title)
	assert.Empty(t, d.Activities)
}

func TestIndexOfActivity(t *testing.T) {
	d := Day{Activities: []Activity{{ID: "a1"}, {ID: "a2"}}}
	assert.Equal(t, 1, d.IndexOfActivity("a2"))
	assert.Equal(t, -1, d.IndexOfActivity("missing"))
}

func TestMoodByLabel(t *testing.T) {
	m, ok := MoodByLabel("Foodie")
	require.True(t, ok)
	assert.Equal(t, "🍽️", m.Emoji)

	_, ok = MoodByLabel("Grumpy")
	assert.False(t, ok)
}

func TestTripSetupValidate(t *testing.T) {
	setup := DefaultTripSetup()
	require.NoError(t, setup.Validate())

	bad := setup
	bad.Destination = ""
	require.Error(t, bad.Validate())

	bad = setup
	bad.TripType = "space"
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trip type")

	bad = setup
	bad.NumberOfDays = 0
	require.Error(t, bad.Validate())
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/travelscape/internal/domain"
)

var activityCounter atomic.Int64

// Activity options
type ActivityOption func(*domain.Activity)

func WithType(t domain.ActivityType) ActivityOption {
	return func(a *domain.Activity) {
		a.Type = t
	}
}

func WithTags(tags ...string) ActivityOption {
	return func(a *domain.Activity) {
		a.Tags = tags
	}
}

func WithTimes(start, end string) ActivityOption {
	return func(a *domain.Activity) {
		a.TimeStart = start
		a.TimeEnd = end
	}
}

func WithLocation(loc string) ActivityOption {
	return func(a *domain.Activity) {
		a.Location = loc
	}
}

func WithNotes(notes string) ActivityOption {
	return func(a *domain.Activity) {
		a.Notes = notes
	}
}

func WithChecklist(texts ...string) ActivityOption {
	return func(a *domain.Activity) {
		for i, text := range texts {
			a.Checklist = append(a.Checklist, domain.ChecklistItem{
				ID:   fmt.Sprintf("%s-c%d", a.ID, i+1),
				Text: text,
			})
		}
	}
}

// NewTestActivity builds an activity with a unique sequential id.
func NewTestActivity(title string, opts ...ActivityOption) domain.Activity {
	n := activityCounter.Add(1)
	a := domain.Activity{
		ID:    fmt.Sprintf("activity-t%d", n),
		Title: title,
		Type:  domain.ActivityGeneric,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Day options
type DayOption func(*domain.Day)

func WithActivities(acts ...domain.Activity) DayOption {
	return func(d *domain.Day) {
		d.Activities = acts
	}
}

func WithMood(m domain.Mood) DayOption {
	return func(d *domain.Day) {
		d.Mood = &m
	}
}

// NewTestDay builds the nth day, optionally pre-filled with activities.
func NewTestDay(n int, opts ...DayOption) domain.Day {
	d := domain.NewDay(n)
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewTestSetup builds a valid trip setup.
func NewTestSetup(destination string, days int) domain.TripSetup {
	return domain.TripSetup{
		Destination:  destination,
		TripType:     domain.TripBeaches,
		NumberOfDays: days,
		StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

package planner

import (
	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/google/uuid"
)

// SeedDays builds one empty day per requested trip length.
func SeedDays(setup domain.TripSetup) []domain.Day {
	days := make([]domain.Day, setup.NumberOfDays)
	for i := range days {
		days[i] = domain.NewDay(i + 1)
	}
	return days
}

// NewChecklistItem builds an unchecked checklist entry with a fresh id.
func NewChecklistItem(text string) domain.ChecklistItem {
	return domain.ChecklistItem{
		ID:   "checklist-" + uuid.New().String()[:8],
		Text: text,
	}
}

// SampleDays is the starter itinerary shown on a brand-new install, before
// any setup has been saved: a four-day beach trip with the first three days
// sketched out.
func SampleDays() []domain.Day {
	days := make([]domain.Day, 4)
	for i := range days {
		days[i] = domain.NewDay(i + 1)
	}
	days[0].Activities = []domain.Activity{
		{
			ID:        "activity-1",
			Title:     "Airport Arrival & Check-in",
			TimeStart: "10:00",
			TimeEnd:   "12:00",
			Location:  "Ngurah Rai International Airport",
			Notes:     "Collect luggage and transfer to hotel",
			Tags:      []string{"travel", "booked"},
			Type:      domain.ActivityTravel,
			Checklist: []domain.ChecklistItem{
				NewChecklistItem("Passport"),
				NewChecklistItem("Hotel Booking"),
				NewChecklistItem("Transfer Confirmation"),
			},
		},
		{
			ID:        "activity-2",
			Title:     "Beach Club Relaxation",
			TimeStart: "14:00",
			TimeEnd:   "18:00",
			Location:  "Potato Head Beach Club",
			Notes:     "Beachfront relaxation and sunset views",
			Tags:      []string{"must-do"},
			Type:      domain.ActivityGeneric,
			Checklist: []domain.ChecklistItem{
				NewChecklistItem("Swimwear"),
				NewChecklistItem("Sunscreen"),
			},
		},
	}
	days[1].Activities = []domain.Activity{
		{
			ID:        "activity-3",
			Title:     "Ubud Temple Tour",
			TimeStart: "09:00",
			TimeEnd:   "15:00",
			Location:  "Ubud Sacred Temples",
			Notes:     "Visit multiple temples with local guide",
			Tags:      []string{"explore", "booked"},
			Type:      domain.ActivityExplore,
			Checklist: []domain.ChecklistItem{
				NewChecklistItem("Camera"),
				NewChecklistItem("Comfortable Shoes"),
			},
		},
		{
			ID:        "activity-4",
			Title:     "Traditional Dinner Show",
			TimeStart: "19:00",
			TimeEnd:   "21:00",
			Location:  "Royal Palace",
			Notes:     "Traditional Balinese dance performance",
			Tags:      []string{"food", "must-do"},
			Type:      domain.ActivityFood,
		},
	}
	days[2].Activities = []domain.Activity{
		{
			ID:        "activity-5",
			Title:     "Surfing Lesson",
			TimeStart: "08:00",
			TimeEnd:   "11:00",
			Location:  "Kuta Beach",
			Notes:     "Beginner-friendly surf instruction",
			Tags:      []string{"activity", "booked"},
			Type:      domain.ActivityGeneric,
			Checklist: []domain.ChecklistItem{
				NewChecklistItem("Swimwear"),
				NewChecklistItem("Sunscreen"),
				NewChecklistItem("Change of clothes"),
			},
		},
	}
	return days
}

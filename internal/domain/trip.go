package domain

import (
	"fmt"
	"time"
)

// TripSetup holds the parameters collected by the trip setup wizard.
// It is persisted as a single-row slot and used to seed the initial
// day list for a new itinerary.
type TripSetup struct {
	Destination  string
	TripType     TripType
	NumberOfDays int
	StartDate    time.Time
}

// Validate checks that the setup parameters can seed an itinerary.
func (t *TripSetup) Validate() error {
	if t.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if !ValidTripTypes[string(t.TripType)] {
		return fmt.Errorf("trip type %q must be one of beaches, mountains, cities", t.TripType)
	}
	if t.NumberOfDays < 1 {
		return fmt.Errorf("number of days must be at least 1, got %d", t.NumberOfDays)
	}
	return nil
}

// DefaultTripSetup returns the sample trip used when no setup slot exists yet.
func DefaultTripSetup() TripSetup {
	return TripSetup{
		Destination:  "Bali Adventure",
		TripType:     TripBeaches,
		NumberOfDays: 4,
		StartDate:    time.Now().UTC().Truncate(24 * time.Hour),
	}
}

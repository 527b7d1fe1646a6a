package domain

type TripType string

const (
	TripBeaches   TripType = "beaches"
	TripMountains TripType = "mountains"
	TripCities    TripType = "cities"
)

// ValidTripTypes is the canonical set of accepted trip type strings.
var ValidTripTypes = map[string]bool{
	"beaches": true, "mountains": true, "cities": true,
}

type ActivityType string

const (
	ActivityFood          ActivityType = "food"
	ActivityTravel        ActivityType = "travel"
	ActivityExplore       ActivityType = "explore"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityGeneric       ActivityType = "activity"
)

// ValidActivityTypes is the canonical set of accepted activity type strings.
var ValidActivityTypes = map[string]bool{
	"food": true, "travel": true, "explore": true,
	"accommodation": true, "activity": true,
}

// BuiltinTags are the status tags offered alongside the activity types in the
// tag filter. An activity's type also acts as an implicit tag when filtering.
var BuiltinTags = []string{"planned", "booked", "must-do"}

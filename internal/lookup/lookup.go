// Package lookup holds the fixed location tables consulted by the board.
// Matches are exact-string against an activity's location; a miss simply
// means nothing extra is shown.
package lookup

// Coordinates is a latitude/longitude pair for the map link.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Weather is the mock forecast shown on an activity card.
type Weather struct {
	Temp      string
	Condition string
	Icon      string
}

var locationCoords = map[string]Coordinates{
	"Mountain View Restaurant": {Lat: 37.3861, Lng: -122.0839},
	"Eagle Peak Trail":         {Lat: 37.7993, Lng: -121.9991},
	"Local Airport":            {Lat: 37.6213, Lng: -122.3790},
	"Beach City":               {Lat: 33.8850, Lng: -118.4085},
}

var locationWeather = map[string]Weather{
	"Eagle Peak Trail":         {Temp: "22°C", Condition: "Sunny", Icon: "☀️"},
	"Beach City":               {Temp: "28°C", Condition: "Partly Cloudy", Icon: "⛅"},
	"Mountain View Restaurant": {Temp: "24°C", Condition: "Clear", Icon: "🌤️"},
	"Local Airport":            {Temp: "20°C", Condition: "Light Rain", Icon: "🌦️"},
	"Ngurah Rai International Airport": {Temp: "29°C", Condition: "Humid", Icon: "🌤️"},
	"Potato Head Beach Club":           {Temp: "30°C", Condition: "Sunny", Icon: "☀️"},
	"Kuta Beach":                       {Temp: "29°C", Condition: "Sunny", Icon: "☀️"},
}

// Coords returns the coordinates for a location, if known.
func Coords(location string) (Coordinates, bool) {
	c, ok := locationCoords[location]
	return c, ok
}

// WeatherFor returns the mock weather for a location, if known.
func WeatherFor(location string) (Weather, bool) {
	w, ok := locationWeather[location]
	return w, ok
}

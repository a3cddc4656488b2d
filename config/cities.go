package config

// City represents a supported city and its default map position
type City struct {
	Name      string    `json:"name"`
	Center    []float64 `json:"center"`
	ZoomLevel int       `json:"zoom_level"`
}

// SupportedCities is the fixed, ordered list of cities supported by the
// application. A city's position in this list doubles as its categorical
// encoding for the model, so the order must never change.
var SupportedCities = []City{
	{
		Name:      "Paris",
		Center:    []float64{48.8566, 2.3522},
		ZoomLevel: 13,
	},
	{
		Name:      "Rome",
		Center:    []float64{41.9028, 12.4964},
		ZoomLevel: 13,
	},
	{
		Name:      "Amsterdam",
		Center:    []float64{52.3676, 4.9041},
		ZoomLevel: 13,
	},
	{
		Name:      "Berlin",
		Center:    []float64{52.5200, 13.4050},
		ZoomLevel: 13,
	},
	{
		Name:      "Prague",
		Center:    []float64{50.0755, 14.4378},
		ZoomLevel: 13,
	},
	{
		Name:      "Barcelona",
		Center:    []float64{41.3851, 2.1734},
		ZoomLevel: 13,
	},
	{
		Name:      "Budapest",
		Center:    []float64{47.4979, 19.0402},
		ZoomLevel: 13,
	},
	{
		Name:      "Vienna",
		Center:    []float64{48.2082, 16.3738},
		ZoomLevel: 13,
	},
	{
		Name:      "Athens",
		Center:    []float64{37.9838, 23.7275},
		ZoomLevel: 13,
	},
	{
		Name:      "Istanbul",
		Center:    []float64{41.0082, 28.9784},
		ZoomLevel: 13,
	},
	{
		Name:      "Dublin",
		Center:    []float64{53.3498, -6.2603},
		ZoomLevel: 13,
	},
	{
		Name:      "Oslo",
		Center:    []float64{59.9139, 10.7522},
		ZoomLevel: 13,
	},
	{
		Name:      "Stockholm",
		Center:    []float64{59.3293, 18.0686},
		ZoomLevel: 13,
	},
	{
		Name:      "Copenhagen",
		Center:    []float64{55.6761, 12.5683},
		ZoomLevel: 13,
	},
	{
		Name:      "Brussels",
		Center:    []float64{50.8503, 4.3517},
		ZoomLevel: 13,
	},
}

// GetCityNames returns the supported city names in table order
func GetCityNames() []string {
	names := make([]string, len(SupportedCities))
	for i, city := range SupportedCities {
		names[i] = city.Name
	}
	return names
}

// GetCityByName returns a city configuration by name
func GetCityByName(name string) *City {
	for _, city := range SupportedCities {
		if city.Name == name {
			return &city
		}
	}
	return nil
}

// CityIndex returns the stable 0-based position of a city in the table,
// or -1 for an unknown name.
func CityIndex(name string) int {
	for i, city := range SupportedCities {
		if city.Name == name {
			return i
		}
	}
	return -1
}

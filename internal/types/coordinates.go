package types

import "fmt"

type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// String formats the coordinates as "lat, lon" with four decimals
func (c Coords) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

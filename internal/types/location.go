package types

// GeoResult is a location resolved by the geocoding endpoint.
// It only lives long enough to feed the forecast request.
type GeoResult struct {
	Name        string
	Country     string
	State       string
	Coordinates Coords
}

// DisplayName returns "Name, Country", or just the name when the country is unknown
func (g GeoResult) DisplayName() string {
	return JoinPlace(g.Name, g.Country)
}

// JoinPlace joins a place name and its country code for display
func JoinPlace(name, country string) string {
	if country == "" {
		return name
	}
	if name == "" {
		return country
	}
	return name + ", " + country
}

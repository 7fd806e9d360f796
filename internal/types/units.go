package types

import "fmt"

// Units is the OpenWeatherMap unit system passed as the "units" query parameter
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

// ParseUnits validates a unit system name
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return Units(s), nil
	default:
		return "", fmt.Errorf("unknown unit system %q", s)
	}
}

// TemperatureSymbol returns the suffix printed after a temperature
func (u Units) TemperatureSymbol() string {
	switch u {
	case UnitsImperial:
		return "°F"
	case UnitsStandard:
		return "K"
	default:
		return "°C"
	}
}

// SpeedSymbol returns the suffix printed after a wind speed
func (u Units) SpeedSymbol() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

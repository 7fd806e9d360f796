package types

import (
	"fmt"
	"strconv"
)

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

type Wind struct {
	Speed             float64
	Units             Units
	DirectionDegrees  float64
	DirectionCardinal string
}

func NewWind(speed, directionDegrees float64, units Units) Wind {
	return Wind{
		Speed:             speed,
		Units:             units,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: CardinalDirection(directionDegrees),
	}
}

// CardinalDirection maps degrees to one of 16 compass points
func CardinalDirection(degrees float64) string {
	direction := (degrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}
	return cardinalDirections[index]
}

const mphPerMetrePerSecond = 2.2369362920544

// ConvertSpeed converts a wind speed between unit systems.
// Metric and standard both use m/s.
func ConvertSpeed(speed float64, from, to Units) float64 {
	if (from == UnitsImperial) == (to == UnitsImperial) {
		return speed
	}
	if to == UnitsImperial {
		return speed * mphPerMetrePerSecond
	}
	return speed / mphPerMetrePerSecond
}

// SpeedString formats the speed as the API returned it, e.g. "4.1 m/s"
func (w Wind) SpeedString() string {
	return fmt.Sprintf("%s %s", strconv.FormatFloat(w.Speed, 'f', -1, 64), w.Units.SpeedSymbol())
}

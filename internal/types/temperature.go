package types

import (
	"fmt"
	"math"
)

const kelvinOffset = 273.15

// Temperature is a reading in the unit system it was requested with
type Temperature struct {
	Value float64
	Units Units
}

func NewTemperature(value float64, units Units) Temperature {
	return Temperature{
		Value: value,
		Units: units,
	}
}

// Rounded returns the value rounded half away from zero
func (t Temperature) Rounded() int {
	return int(math.Round(t.Value))
}

// Celsius converts the reading to degrees Celsius
func (t Temperature) Celsius() float64 {
	switch t.Units {
	case UnitsImperial:
		return (t.Value - 32) * 5 / 9
	case UnitsStandard:
		return t.Value - kelvinOffset
	default:
		return t.Value
	}
}

// Fahrenheit converts the reading to degrees Fahrenheit
func (t Temperature) Fahrenheit() float64 {
	if t.Units == UnitsImperial {
		return t.Value
	}
	return t.Celsius()*9/5 + 32
}

// Kelvin converts the reading to kelvin
func (t Temperature) Kelvin() float64 {
	if t.Units == UnitsStandard {
		return t.Value
	}
	return t.Celsius() + kelvinOffset
}

// In returns the same reading expressed in another unit system
func (t Temperature) In(units Units) Temperature {
	switch units {
	case UnitsImperial:
		return NewTemperature(t.Fahrenheit(), units)
	case UnitsStandard:
		return NewTemperature(t.Kelvin(), units)
	default:
		return NewTemperature(t.Celsius(), UnitsMetric)
	}
}

func (t Temperature) String() string {
	return fmt.Sprintf("%d%s", t.Rounded(), t.Units.TemperatureSymbol())
}

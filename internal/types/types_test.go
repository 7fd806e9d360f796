package types

import (
	"math"
	"testing"
)

func TestTemperature_Rounded(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{"round down", 15.4, 15},
		{"round half up", 15.5, 16},
		{"negative", -2.6, -3},
		{"negative half", -0.5, -1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTemperature(tt.value, UnitsMetric).Rounded()
			if got != tt.expected {
				t.Errorf("Rounded(%v) = %d, want %d", tt.value, got, tt.expected)
			}
		})
	}
}

func TestTemperature_String(t *testing.T) {
	tests := []struct {
		temp     Temperature
		expected string
	}{
		{NewTemperature(14.62, UnitsMetric), "15°C"},
		{NewTemperature(58.3, UnitsImperial), "58°F"},
		{NewTemperature(288.15, UnitsStandard), "288K"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.temp.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTemperature_Conversions(t *testing.T) {
	const epsilon = 1e-9

	kelvin := NewTemperature(273.15, UnitsStandard)
	if math.Abs(kelvin.Celsius()) > epsilon {
		t.Errorf("273.15K Celsius() = %v, want 0", kelvin.Celsius())
	}
	if math.Abs(kelvin.Fahrenheit()-32) > epsilon {
		t.Errorf("273.15K Fahrenheit() = %v, want 32", kelvin.Fahrenheit())
	}

	fahrenheit := NewTemperature(212, UnitsImperial)
	if math.Abs(fahrenheit.Celsius()-100) > epsilon {
		t.Errorf("212F Celsius() = %v, want 100", fahrenheit.Celsius())
	}
}

func TestTemperature_In(t *testing.T) {
	const epsilon = 1e-9
	tests := []struct {
		name  string
		from  Temperature
		units Units
		want  float64
	}{
		{"metric to imperial", NewTemperature(100, UnitsMetric), UnitsImperial, 212},
		{"metric to standard", NewTemperature(0, UnitsMetric), UnitsStandard, 273.15},
		{"standard to metric", NewTemperature(273.15, UnitsStandard), UnitsMetric, 0},
		{"imperial to imperial", NewTemperature(58.3, UnitsImperial), UnitsImperial, 58.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.In(tt.units)
			if got.Units != tt.units {
				t.Errorf("In().Units = %v, want %v", got.Units, tt.units)
			}
			if math.Abs(got.Value-tt.want) > epsilon {
				t.Errorf("In().Value = %v, want %v", got.Value, tt.want)
			}
		})
	}
}

func TestConvertSpeed(t *testing.T) {
	const epsilon = 1e-6
	tests := []struct {
		name     string
		speed    float64
		from, to Units
		want     float64
	}{
		{"metric to imperial", 10, UnitsMetric, UnitsImperial, 22.369362920544},
		{"imperial to standard", 22.369362920544, UnitsImperial, UnitsStandard, 10},
		{"metric to standard", 4.1, UnitsMetric, UnitsStandard, 4.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertSpeed(tt.speed, tt.from, tt.to); math.Abs(got-tt.want) > epsilon {
				t.Errorf("ConvertSpeed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		degrees  float64
		expected string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.25, "NNE"},
		{90, "E"},
		{180, "S"},
		{247.5, "WSW"},
		{350, "N"},
		{360, "N"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := CardinalDirection(tt.degrees); got != tt.expected {
				t.Errorf("CardinalDirection(%v) = %q, want %q", tt.degrees, got, tt.expected)
			}
		})
	}
}

func TestParseUnits(t *testing.T) {
	for _, valid := range []string{"metric", "imperial", "standard"} {
		if _, err := ParseUnits(valid); err != nil {
			t.Errorf("ParseUnits(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseUnits("kelvin"); err == nil {
		t.Error("ParseUnits(\"kelvin\") expected error but got none")
	}
}

func TestUnits_Symbols(t *testing.T) {
	if got := UnitsImperial.SpeedSymbol(); got != "mph" {
		t.Errorf("imperial SpeedSymbol() = %q, want mph", got)
	}
	if got := UnitsStandard.SpeedSymbol(); got != "m/s" {
		t.Errorf("standard SpeedSymbol() = %q, want m/s", got)
	}
	if got := UnitsStandard.TemperatureSymbol(); got != "K" {
		t.Errorf("standard TemperatureSymbol() = %q, want K", got)
	}
}

func TestWind_SpeedString(t *testing.T) {
	if got := NewWind(4.1, 250, UnitsMetric).SpeedString(); got != "4.1 m/s" {
		t.Errorf("SpeedString() = %q, want %q", got, "4.1 m/s")
	}
	if got := NewWind(10, 0, UnitsImperial).SpeedString(); got != "10 mph" {
		t.Errorf("SpeedString() = %q, want %q", got, "10 mph")
	}
}

func TestGeoResult_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		geo      GeoResult
		expected string
	}{
		{"name and country", GeoResult{Name: "London", Country: "GB"}, "London, GB"},
		{"no country", GeoResult{Name: "London"}, "London"},
		{"no name", GeoResult{Country: "GB"}, "GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.geo.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCoords_String(t *testing.T) {
	if got := NewCoords(51.5073219, -0.1276474).String(); got != "51.5073, -0.1276" {
		t.Errorf("String() = %q, want %q", got, "51.5073, -0.1276")
	}
}

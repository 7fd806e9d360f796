package sandbox

import (
	"math"

	"github.com/gin-gonic/gin"

	"weather-probe/internal/providers/openweathermap"
	"weather-probe/internal/types"
)

// fixtureUnits is the unit system fixture readings are stored in
const fixtureUnits = types.UnitsMetric

// requestUnits reads the "units" query parameter. Like the real API, an
// omitted parameter means standard units.
func requestUnits(c *gin.Context) (types.Units, bool) {
	raw := c.Query("units")
	if raw == "" {
		return types.UnitsStandard, true
	}
	units, err := types.ParseUnits(raw)
	return units, err == nil
}

// round2 keeps the two decimals the real API reports
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func convertTemp(value float64, units types.Units) float64 {
	return round2(types.NewTemperature(value, fixtureUnits).In(units).Value)
}

func convertReadings(r *openweathermap.Readings, units types.Units) *openweathermap.Readings {
	if r == nil {
		return nil
	}
	out := *r
	out.Temp = convertTemp(r.Temp, units)
	out.FeelsLike = convertTemp(r.FeelsLike, units)
	out.TempMin = convertTemp(r.TempMin, units)
	out.TempMax = convertTemp(r.TempMax, units)
	return &out
}

func convertWind(w openweathermap.Wind, units types.Units) openweathermap.Wind {
	w.Speed = round2(types.ConvertSpeed(w.Speed, fixtureUnits, units))
	w.Gust = round2(types.ConvertSpeed(w.Gust, fixtureUnits, units))
	return w
}

func currentIn(resp openweathermap.CurrentWeatherAPIResponse, units types.Units) openweathermap.CurrentWeatherAPIResponse {
	resp.Main = convertReadings(resp.Main, units)
	resp.Wind = convertWind(resp.Wind, units)
	return resp
}

func forecastIn(resp openweathermap.ForecastAPIResponse, units types.Units) openweathermap.ForecastAPIResponse {
	if resp.List == nil {
		return resp
	}
	list := make([]openweathermap.ForecastEntry, len(resp.List))
	for i, entry := range resp.List {
		entry.Main = convertReadings(entry.Main, units)
		entry.Wind = convertWind(entry.Wind, units)
		list[i] = entry
	}
	resp.List = list
	return resp
}

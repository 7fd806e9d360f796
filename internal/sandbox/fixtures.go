package sandbox

import (
	"weather-probe/internal/providers/openweathermap"
)

// Endpoint names used for forced failures and hit counters
const (
	EndpointCurrentWeather = "weather"
	EndpointGeocoding      = "geocoding"
	EndpointForecast       = "forecast"
)

// Fixtures is the canned data the sandbox serves. Readings are stored in
// metric units and converted to the unit system a request asks for.
type Fixtures struct {
	APIKey         string
	CurrentWeather openweathermap.CurrentWeatherAPIResponse
	Locations      []openweathermap.GeocodeAPIResponse
	Forecast       openweathermap.ForecastAPIResponse

	// ForcedStatus makes an endpoint answer with the given status instead of data
	ForcedStatus map[string]int
}

func degrees(d float64) *float64 {
	return &d
}

// DefaultFixtures returns London data shaped like real API responses
func DefaultFixtures(apiKey string) Fixtures {
	var current openweathermap.CurrentWeatherAPIResponse
	current.Coord.Lat = 51.5085
	current.Coord.Lon = -0.1257
	current.Weather = []openweathermap.Condition{
		{Id: 500, Main: "Rain", Description: "light rain", Icon: "10d"},
	}
	current.Base = "stations"
	current.Main = &openweathermap.Readings{
		Temp:      14.62,
		FeelsLike: 14.21,
		TempMin:   13.4,
		TempMax:   15.6,
		Pressure:  1012,
		Humidity:  81,
	}
	current.Visibility = 10000
	current.Wind = openweathermap.Wind{Speed: 4.1, Deg: degrees(250)}
	current.Clouds.All = 75
	current.Dt = 1705320000
	current.Sys.Country = "GB"
	current.Sys.Sunrise = 1705305360
	current.Sys.Sunset = 1705335540
	current.Id = 2643743
	current.Name = "London"
	current.Cod = 200

	locations := []openweathermap.GeocodeAPIResponse{
		{Name: "London", Lat: 51.5073219, Lon: -0.1276474, Country: "GB", State: "England"},
		{Name: "London", Lat: 42.9832406, Lon: -81.243372, Country: "CA", State: "Ontario"},
		{Name: "Paris", Lat: 48.8588897, Lon: 2.3200410, Country: "FR", State: "Ile-de-France"},
	}

	var forecast openweathermap.ForecastAPIResponse
	forecast.Cod = "200"
	forecast.City.Id = 2643743
	forecast.City.Name = "London"
	forecast.City.Country = "GB"
	forecast.City.Coord.Lat = 51.5073
	forecast.City.Coord.Lon = -0.1276
	forecast.City.Population = 1000000
	const step = 3 * 60 * 60
	temps := []float64{9.4, 8.1, 7.3, 6.9, 8.8, 11.2, 12.5, 10.6}
	start := int64(1705320000) // 2024-01-15 12:00:00 UTC
	for i := 0; i < 40; i++ {
		var entry openweathermap.ForecastEntry
		entry.Dt = start + int64(i*step)
		entry.Main = &openweathermap.Readings{Temp: temps[i%len(temps)], Humidity: 80}
		entry.Weather = []openweathermap.Condition{{Id: 803, Main: "Clouds", Description: "broken clouds", Icon: "04d"}}
		entry.Wind = openweathermap.Wind{Speed: 3.6, Deg: degrees(240)}
		entry.DtTxt = unixToText(entry.Dt)
		forecast.List = append(forecast.List, entry)
	}
	forecast.Cnt = len(forecast.List)

	return Fixtures{
		APIKey:         apiKey,
		CurrentWeather: current,
		Locations:      locations,
		Forecast:       forecast,
		ForcedStatus:   map[string]int{},
	}
}

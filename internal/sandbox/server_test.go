package sandbox

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-probe/internal/providers/openweathermap"
)

const testKey = "sandbox-test-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, fixtures Fixtures) (*Server, *httptest.Server) {
	t.Helper()
	srv := NewServer(fixtures, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func get(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestPing(t *testing.T) {
	_, ts := newTestServer(t, DefaultFixtures(testKey))

	var body PingResponse
	status := get(t, ts.URL+"/ping", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body.Message)
}

func TestRequireAPIKey(t *testing.T) {
	srv, ts := newTestServer(t, DefaultFixtures(testKey))

	paths := []string{
		"/data/2.5/weather?q=London",
		"/geo/1.0/direct?q=London&limit=1",
		"/data/2.5/forecast?lat=51.5&lon=-0.12",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			var body ErrorResponse
			status := get(t, ts.URL+path+"&appid=wrong", &body)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, http.StatusUnauthorized, body.Cod)
			assert.Contains(t, body.Message, "Invalid API key")
		})
	}

	assert.Equal(t, 3, srv.TotalHits())
}

func TestCurrentWeather(t *testing.T) {
	srv, ts := newTestServer(t, DefaultFixtures(testKey))

	var body openweathermap.CurrentWeatherAPIResponse
	status := get(t, ts.URL+"/data/2.5/weather?q=london,GB&units=metric&appid="+testKey, &body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "London", body.Name)
	assert.Equal(t, "GB", body.Sys.Country)
	assert.Equal(t, 1, srv.Hits(EndpointCurrentWeather))

	status = get(t, ts.URL+"/data/2.5/weather?q=Atlantis&appid="+testKey, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status = get(t, ts.URL+"/data/2.5/weather?appid="+testKey, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGeocode(t *testing.T) {
	_, ts := newTestServer(t, DefaultFixtures(testKey))

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantFirst string
	}{
		{"limit one", "q=London&limit=1", 1, "GB"},
		{"default limit", "q=London", 2, "GB"},
		{"country filter", "q=London,CA&limit=1", 1, "CA"},
		{"no match", "q=Atlantis&limit=1", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []openweathermap.GeocodeAPIResponse
			status := get(t, ts.URL+"/geo/1.0/direct?"+tt.query+"&appid="+testKey, &body)
			require.Equal(t, http.StatusOK, status)
			require.Len(t, body, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, body[0].Country)
			}
		})
	}

	status := get(t, ts.URL+"/geo/1.0/direct?q=London&limit=zero&appid="+testKey, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestForecast(t *testing.T) {
	_, ts := newTestServer(t, DefaultFixtures(testKey))

	var body openweathermap.ForecastAPIResponse
	status := get(t, ts.URL+"/data/2.5/forecast?lat=51.5073&lon=-0.1276&appid="+testKey, &body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "London", body.City.Name)
	require.Len(t, body.List, 40)
	assert.Equal(t, "2024-01-15 12:00:00", body.List[0].DtTxt)
	assert.Equal(t, "2024-01-15 15:00:00", body.List[1].DtTxt)

	status = get(t, ts.URL+"/data/2.5/forecast?lat=91&lon=0&appid="+testKey, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnitsConversion(t *testing.T) {
	_, ts := newTestServer(t, DefaultFixtures(testKey))

	tests := []struct {
		units     string
		wantTemp  float64
		wantSpeed float64
		wantFirst float64
	}{
		{"metric", 14.62, 4.1, 9.4},
		{"imperial", 58.32, 9.17, 48.92},
		{"standard", 287.77, 4.1, 282.55},
		{"", 287.77, 4.1, 282.55},
	}

	for _, tt := range tests {
		t.Run("units="+tt.units, func(t *testing.T) {
			var current openweathermap.CurrentWeatherAPIResponse
			status := get(t, ts.URL+"/data/2.5/weather?q=London&units="+tt.units+"&appid="+testKey, &current)
			require.Equal(t, http.StatusOK, status)
			require.NotNil(t, current.Main)
			assert.InDelta(t, tt.wantTemp, current.Main.Temp, 1e-9)
			assert.InDelta(t, tt.wantSpeed, current.Wind.Speed, 1e-9)
			require.NotNil(t, current.Wind.Deg)
			assert.InDelta(t, 250, *current.Wind.Deg, 1e-9)

			var forecast openweathermap.ForecastAPIResponse
			status = get(t, ts.URL+"/data/2.5/forecast?lat=51.5&lon=-0.12&units="+tt.units+"&appid="+testKey, &forecast)
			require.Equal(t, http.StatusOK, status)
			require.NotEmpty(t, forecast.List)
			require.NotNil(t, forecast.List[0].Main)
			assert.InDelta(t, tt.wantFirst, forecast.List[0].Main.Temp, 1e-9)
		})
	}

	status := get(t, ts.URL+"/data/2.5/weather?q=London&units=kelvin&appid="+testKey, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status = get(t, ts.URL+"/data/2.5/forecast?lat=51.5&lon=-0.12&units=si&appid="+testKey, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnitsConversion_LeavesFixturesUntouched(t *testing.T) {
	fixtures := DefaultFixtures(testKey)
	srv, ts := newTestServer(t, fixtures)

	get(t, ts.URL+"/data/2.5/weather?q=London&units=imperial&appid="+testKey, nil)
	get(t, ts.URL+"/data/2.5/forecast?lat=51.5&lon=-0.12&units=imperial&appid="+testKey, nil)

	assert.InDelta(t, 14.62, srv.fixtures.CurrentWeather.Main.Temp, 1e-9)
	assert.InDelta(t, 9.4, srv.fixtures.Forecast.List[0].Main.Temp, 1e-9)
}

func TestForcedStatus(t *testing.T) {
	fixtures := DefaultFixtures(testKey)
	fixtures.ForcedStatus[EndpointForecast] = http.StatusServiceUnavailable
	_, ts := newTestServer(t, fixtures)

	var body ErrorResponse
	status := get(t, ts.URL+"/data/2.5/forecast?lat=51.5&lon=-0.12&appid="+testKey, &body)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "service unavailable", body.Message)

	// Other endpoints are unaffected
	status = get(t, ts.URL+"/data/2.5/weather?q=London&appid="+testKey, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestSwaggerRedirect(t *testing.T) {
	_, ts := newTestServer(t, DefaultFixtures(testKey))

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(ts.URL + "/swagger/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/swagger/index.html", resp.Header.Get("Location"))
}

func TestSwaggerDocJSON(t *testing.T) {
	_, ts := newTestServer(t, DefaultFixtures(testKey))

	var doc map[string]any
	status := get(t, ts.URL+"/swagger/doc.json", &doc)
	require.Equal(t, http.StatusOK, status)
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/data/2.5/weather")
	assert.Contains(t, paths, "/geo/1.0/direct")
	assert.Contains(t, paths, "/data/2.5/forecast")
}

package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"weather-probe/internal/types"
)

// API Docs:
// - https://openweathermap.org/current
// - https://openweathermap.org/api/geocoding-api
// - https://openweathermap.org/forecast5
// Sample requests:
// - https://api.openweathermap.org/data/2.5/weather?q=London&units=metric&appid={key}
// - https://api.openweathermap.org/geo/1.0/direct?q=London&limit=1&appid={key}
// - https://api.openweathermap.org/data/2.5/forecast?lat=51.5073&lon=-0.1276&units=metric&appid={key}
const (
	DefaultBaseURL = "https://api.openweathermap.org"

	currentWeatherPath = "/data/2.5/weather"
	geocodePath        = "/geo/1.0/direct"
	forecastPath       = "/data/2.5/forecast"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      types.Units
	logger     *slog.Logger
}

// NewClient creates a client whose transport is traced with otelhttp.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL, apiKey string, units types.Units, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		units:   units,
		logger:  logger.With("component", "openweathermap-client"),
	}
}

// Units returns the unit system sent with every request
func (c *Client) Units() types.Units {
	return c.units
}

// GetCurrentWeather fetches current conditions for a location query such as "London" or "London,GB"
func (c *Client) GetCurrentWeather(ctx context.Context, query string) (*CurrentWeatherAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("units", string(c.units))

	var apiResp CurrentWeatherAPIResponse
	if err := c.getJSON(ctx, currentWeatherPath, q, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched current weather", "query", query, "city", apiResp.Name)
	return &apiResp, nil
}

// Geocode resolves a location query to at most limit candidate places
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]GeocodeAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	var apiResp []GeocodeAPIResponse
	if err := c.getJSON(ctx, geocodePath, q, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("geocoded location", "query", query, "results", len(apiResp))
	return apiResp, nil
}

// GetForecast fetches the 5 day / 3 hour forecast for the given coordinates
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("units", string(c.units))

	var apiResp ForecastAPIResponse
	if err := c.getJSON(ctx, forecastPath, q, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched forecast",
		"latitude", latitude,
		"longitude", longitude,
		"entries", len(apiResp.List),
	)
	return &apiResp, nil
}

// getJSON issues a GET against path with the credential appended and decodes
// a 2xx body into out
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = path
	u.RawQuery = q.Encode()
	redacted := u.String()
	c.logger.Debug("requesting", "url", redacted)

	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Keep the credential out of printed and logged errors
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redacted
		}
		c.logger.Error("request failed", "path", path, "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenWeatherMap API returned error",
			"path", path,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return newStatusError(resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode response", "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"weather-probe/internal/config"
	"weather-probe/internal/providers/openweathermap"
	"weather-probe/internal/timezone"
	"weather-probe/internal/types"
)

const (
	nameCurrentWeather = "Current Weather"
	nameGeocoding      = "Geocoding"
	nameForecast       = "Forecast"

	geocodeLimit = 1
)

// WeatherProvider is the upstream API the probe checks
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, query string) (*openweathermap.CurrentWeatherAPIResponse, error)
	Geocode(ctx context.Context, query string, limit int) ([]openweathermap.GeocodeAPIResponse, error)
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.ForecastAPIResponse, error)
}

// Probe runs the three endpoint checks in order and prints a report
type Probe struct {
	provider        WeatherProvider
	timezoneService timezone.Service // optional
	location        string
	units           types.Units
	hasAPIKey       bool
	out             reporter
	logger          *slog.Logger
	tracer          trace.Tracer
}

// NewProbe creates a probe backed by the real OpenWeatherMap client.
// The timezone line is dropped if the tz data cannot be loaded.
func NewProbe(cfg *config.Config, out io.Writer, logger *slog.Logger) *Probe {
	units, err := types.ParseUnits(cfg.OpenWeather.Units)
	if err != nil {
		units = types.UnitsMetric
	}

	client := openweathermap.NewClient(
		cfg.OpenWeather.BaseURL,
		cfg.OpenWeather.APIKey,
		units,
		cfg.OpenWeather.Timeout,
		logger,
	)

	var tzSvc timezone.Service
	if cfg.HasAPIKey() {
		if svc, err := timezone.NewService(); err != nil {
			logger.Warn("timezone lookup unavailable", "error", err)
		} else {
			tzSvc = svc
		}
	}

	return NewProbeWithProviders(client, tzSvc, cfg, out, logger)
}

// NewProbeWithProviders creates a probe with custom providers.
// This is useful for testing with mock providers.
func NewProbeWithProviders(
	provider WeatherProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	out io.Writer,
	logger *slog.Logger,
) *Probe {
	units, err := types.ParseUnits(cfg.OpenWeather.Units)
	if err != nil {
		units = types.UnitsMetric
	}

	return &Probe{
		provider:        provider,
		timezoneService: timezoneService,
		location:        cfg.OpenWeather.Location,
		units:           units,
		hasAPIKey:       cfg.HasAPIKey(),
		out:             reporter{w: out},
		logger:          logger.With("component", "probe"),
		tracer:          otel.Tracer("weather-probe/probe"),
	}
}

// Run executes current weather, geocoding and forecast checks in sequence and
// prints the summary. The forecast check only runs when geocoding produced
// coordinates. The only error returned is ErrMissingAPIKey, in which case no
// request is made.
func (p *Probe) Run(ctx context.Context) (*Summary, error) {
	if !p.hasAPIKey {
		p.logger.Debug("no API key, skipping all checks", "env", config.APIKeyEnvVar)
		p.out.missingAPIKey()
		return nil, ErrMissingAPIKey
	}

	ctx, span := p.tracer.Start(ctx, "probe.run",
		trace.WithAttributes(
			attribute.String("probe.location", p.location),
			attribute.String("probe.units", string(p.units)),
		),
	)
	defer span.End()

	p.out.header()

	var s Summary
	s.CurrentWeather = p.CheckCurrentWeather(ctx)
	p.out.blank()

	s.Location, s.Geocoding = p.CheckGeocoding(ctx)
	p.out.blank()

	if s.Location != nil {
		s.Forecast = p.CheckForecast(ctx, s.Location.Coordinates)
		p.out.blank()
	} else {
		p.logger.Debug("forecast check skipped, geocoding returned no coordinates")
		s.Forecast = failed(ErrSkipped)
	}

	p.out.summary(s)

	span.SetAttributes(
		attribute.Bool("probe.current_weather.passed", s.CurrentWeather.Passed()),
		attribute.Bool("probe.geocoding.passed", s.Geocoding.Passed()),
		attribute.Bool("probe.forecast.passed", s.Forecast.Passed()),
	)
	if !s.AllPassed() {
		span.SetStatus(codes.Error, "one or more checks failed")
	}

	p.logger.Info("probe finished",
		"current_weather", s.CurrentWeather.Kind.String(),
		"geocoding", s.Geocoding.Kind.String(),
		"forecast", s.Forecast.Kind.String(),
	)

	return &s, nil
}

// CheckCurrentWeather requests current conditions for the configured location
func (p *Probe) CheckCurrentWeather(ctx context.Context) Outcome {
	ctx, span := p.tracer.Start(ctx, "probe.current-weather")
	defer span.End()

	p.out.section("1️⃣", nameCurrentWeather)

	resp, err := p.provider.GetCurrentWeather(ctx, p.location)
	if err != nil {
		return p.fail(span, nameCurrentWeather, err)
	}

	switch {
	case resp.Main == nil:
		return p.fail(span, nameCurrentWeather, fmt.Errorf("%w: no \"main\" readings", ErrMissingData))
	case len(resp.Weather) == 0:
		return p.fail(span, nameCurrentWeather, fmt.Errorf("%w: empty \"weather\" list", ErrMissingData))
	}

	p.out.success(nameCurrentWeather)
	p.out.detail("City", types.JoinPlace(resp.Name, resp.Sys.Country))
	p.out.detail("Temperature", types.NewTemperature(resp.Main.Temp, p.units))
	p.out.detail("Condition", resp.Weather[0].Description)
	p.out.detail("Humidity", fmt.Sprintf("%d%%", resp.Main.Humidity))
	var deg float64
	if resp.Wind.Deg != nil {
		deg = *resp.Wind.Deg
	}
	wind := types.NewWind(resp.Wind.Speed, deg, p.units)
	p.out.detail("Wind Speed", wind.SpeedString())
	if resp.Wind.Deg != nil {
		p.out.detail("Wind Direction", wind.DirectionCardinal)
	}

	return Outcome{}
}

// CheckGeocoding resolves the configured location. The result is nil
// whenever the outcome is a failure.
func (p *Probe) CheckGeocoding(ctx context.Context) (*types.GeoResult, Outcome) {
	ctx, span := p.tracer.Start(ctx, "probe.geocoding")
	defer span.End()

	p.out.section("2️⃣", nameGeocoding)

	results, err := p.provider.Geocode(ctx, p.location, geocodeLimit)
	if err != nil {
		return nil, p.fail(span, nameGeocoding, err)
	}
	if len(results) == 0 {
		return nil, p.fail(span, nameGeocoding, fmt.Errorf("%w for %q", ErrNoResults, p.location))
	}

	first := results[0]
	geo := &types.GeoResult{
		Name:        first.Name,
		Country:     first.Country,
		State:       first.State,
		Coordinates: types.NewCoords(first.Lat, first.Lon),
	}

	span.SetAttributes(
		attribute.Float64("geo.latitude", geo.Coordinates.Latitude),
		attribute.Float64("geo.longitude", geo.Coordinates.Longitude),
	)

	p.out.success(nameGeocoding)
	p.out.detail("Location", geo.DisplayName())
	p.out.detail("Coordinates", geo.Coordinates)

	if p.timezoneService != nil {
		tz, err := p.timezoneService.GetTimezone(geo.Coordinates)
		if err != nil {
			p.logger.Debug("timezone lookup failed", "error", err)
		} else {
			p.out.detail("Timezone", tz)
		}
	}

	return geo, Outcome{}
}

// CheckForecast requests the forecast for coordinates from CheckGeocoding
func (p *Probe) CheckForecast(ctx context.Context, coords types.Coords) Outcome {
	ctx, span := p.tracer.Start(ctx, "probe.forecast",
		trace.WithAttributes(
			attribute.Float64("geo.latitude", coords.Latitude),
			attribute.Float64("geo.longitude", coords.Longitude),
		),
	)
	defer span.End()

	p.out.section("3️⃣", nameForecast)

	resp, err := p.provider.GetForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return p.fail(span, nameForecast, err)
	}

	switch {
	case len(resp.List) == 0:
		return p.fail(span, nameForecast, fmt.Errorf("%w: empty \"list\"", ErrMissingData))
	case resp.List[0].Main == nil:
		return p.fail(span, nameForecast, fmt.Errorf("%w: first entry has no \"main\" readings", ErrMissingData))
	}

	first := resp.List[0]
	p.out.success(nameForecast)
	p.out.detail("City", resp.City.Name)
	p.out.detail("Forecast entries", len(resp.List))
	p.out.detail("First entry", fmt.Sprintf("%s - %s",
		entryTime(first),
		types.NewTemperature(first.Main.Temp, p.units),
	))

	return Outcome{}
}

// fail records err on the span, logs it and prints the failure block
func (p *Probe) fail(span trace.Span, name string, err error) Outcome {
	o := failed(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, o.Kind.String())
	span.SetAttributes(attribute.String("probe.failure_kind", o.Kind.String()))
	if o.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", o.StatusCode))
	}

	p.logger.Warn("check failed",
		"check", name,
		"kind", o.Kind.String(),
		"status_code", o.StatusCode,
		"error", err,
	)
	p.out.failure(name, o)

	return o
}

func entryTime(e openweathermap.ForecastEntry) string {
	if e.DtTxt != "" {
		return e.DtTxt
	}
	return time.Unix(e.Dt, 0).UTC().Format(time.DateTime)
}

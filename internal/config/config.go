package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"weather-probe/internal/types"
)

// APIKeyEnvVar is the environment variable holding the OpenWeatherMap credential
const APIKeyEnvVar = "OPENWEATHER_API_KEY"

// Config holds all configuration for the application
type Config struct {
	OpenWeather OpenWeatherConfig
	Log         LogConfig
	Tracing     TracingConfig
	Sandbox     SandboxConfig
}

// OpenWeatherConfig holds the upstream API settings used by the probe
type OpenWeatherConfig struct {
	APIKey   string
	BaseURL  string
	Location string // location query used for current weather and geocoding
	Units    string // metric, imperial, standard
	Timeout  time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// TracingConfig holds OpenTelemetry exporter configuration.
// An empty Endpoint disables tracing.
type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

// SandboxConfig holds settings for the offline OpenWeatherMap stand-in
type SandboxConfig struct {
	Port    int
	GinMode string // debug, release, test
	APIKey  string
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-probe")

	// Set defaults
	v.SetDefault("openweather.apikey", "")
	v.SetDefault("openweather.baseurl", "https://api.openweathermap.org")
	v.SetDefault("openweather.location", "London")
	v.SetDefault("openweather.units", string(types.UnitsMetric))
	v.SetDefault("openweather.timeout", 10*time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.servicename", "weather-probe")
	v.SetDefault("sandbox.port", 8090)
	v.SetDefault("sandbox.ginmode", "release")
	v.SetDefault("sandbox.apikey", "sandbox-key")

	// Read from environment variables
	v.SetEnvPrefix("WEATHER_PROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("openweather.apikey", APIKeyEnvVar, "WEATHER_PROBE_OPENWEATHER_APIKEY"); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", APIKeyEnvVar, err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.OpenWeather.APIKey = strings.TrimSpace(cfg.OpenWeather.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail later in an obscure way
func (c *Config) Validate() error {
	if _, err := types.ParseUnits(c.OpenWeather.Units); err != nil {
		return fmt.Errorf("invalid openweather.units: %w", err)
	}
	if c.OpenWeather.Timeout <= 0 {
		return fmt.Errorf("invalid openweather.timeout %s: must be positive", c.OpenWeather.Timeout)
	}
	if strings.TrimSpace(c.OpenWeather.Location) == "" {
		return errors.New("invalid openweather.location: must not be empty")
	}
	return nil
}

// HasAPIKey reports whether a credential was provided
func (c *Config) HasAPIKey() bool {
	return c.OpenWeather.APIKey != ""
}

// GetSandboxAddr returns the sandbox server address in the format ":port"
func (c *Config) GetSandboxAddr() string {
	return fmt.Sprintf(":%d", c.Sandbox.Port)
}

// NewLogger creates a new slog.Logger based on the configuration.
// Logs go to stderr so they never mix with the report on stdout.
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

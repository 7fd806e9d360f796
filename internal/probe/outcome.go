package probe

import (
	"errors"
	"fmt"

	"weather-probe/internal/providers/openweathermap"
	"weather-probe/internal/types"
)

var (
	// ErrMissingAPIKey ends a run before any request is made
	ErrMissingAPIKey = errors.New("OpenWeatherMap API key not configured")

	// ErrNoResults is reported when geocoding returns an empty list
	ErrNoResults = errors.New("no results found")

	// ErrMissingData is reported when a successful response lacks the fields the report reads
	ErrMissingData = errors.New("response is missing data")

	// ErrSkipped marks the forecast check when geocoding produced no coordinates
	ErrSkipped = errors.New("skipped because geocoding failed")
)

// FailureKind classifies why a check failed. It only feeds logs and
// tracing; the printed report shows pass or fail.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureStatus
	FailureNetwork
	FailureDecode
	FailureNoResults
	FailureMissingData
	FailureSkipped
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureStatus:
		return "http-status"
	case FailureNetwork:
		return "network"
	case FailureDecode:
		return "decode"
	case FailureNoResults:
		return "no-results"
	case FailureMissingData:
		return "missing-data"
	case FailureSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("unknown (%d)", int(k))
	}
}

// Outcome is the result of one check
type Outcome struct {
	Kind       FailureKind
	StatusCode int // HTTP status when the server answered
	Err        error
}

// Passed reports whether the check succeeded
func (o Outcome) Passed() bool {
	return o.Kind == FailureNone && o.Err == nil
}

// failed classifies err into an Outcome
func failed(err error) Outcome {
	var statusErr *openweathermap.StatusError
	switch {
	case errors.As(err, &statusErr):
		return Outcome{Kind: FailureStatus, StatusCode: statusErr.StatusCode, Err: err}
	case errors.Is(err, openweathermap.ErrDecode):
		return Outcome{Kind: FailureDecode, Err: err}
	case errors.Is(err, ErrNoResults):
		return Outcome{Kind: FailureNoResults, Err: err}
	case errors.Is(err, ErrMissingData):
		return Outcome{Kind: FailureMissingData, Err: err}
	case errors.Is(err, ErrSkipped):
		return Outcome{Kind: FailureSkipped, Err: err}
	default:
		return Outcome{Kind: FailureNetwork, Err: err}
	}
}

// Summary collects the outcomes of a full run
type Summary struct {
	CurrentWeather Outcome
	Geocoding      Outcome
	Forecast       Outcome

	// Location is the geocoding result fed to the forecast check, nil on failure
	Location *types.GeoResult
}

// AllPassed reports whether every check succeeded
func (s Summary) AllPassed() bool {
	return s.CurrentWeather.Passed() && s.Geocoding.Passed() && s.Forecast.Passed()
}

package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"weather-probe/internal/types"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf keeps its polygon data in memory, so it is loaded once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// e.g. "Europe/London"
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	timezone := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}

	return timezone, nil
}

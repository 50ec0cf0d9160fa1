package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// Finder is the subset of tzf.F used here
type Finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// service implements timezone lookup using tzf. The finder is built on first
// use: most lookups are answered by the geocoder and never reach it.
type service struct {
	newFinder func() (Finder, error)

	once    sync.Once
	finder  Finder
	initErr error
}

var (
	instance *service
	once     sync.Once
)

// NewService returns the process-wide timezone service.
// tzf loads its polygon data into memory, so every caller shares one finder.
func NewService() Service {
	once.Do(func() {
		instance = &service{newFinder: defaultFinder}
	})
	return instance
}

// NewServiceWithFinder creates a service around a custom finder
// This is useful for testing without loading timezone data
func NewServiceWithFinder(finder Finder) Service {
	return &service{
		newFinder: func() (Finder, error) { return finder, nil },
	}
}

func defaultFinder() (Finder, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, err
	}
	return finder, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/Denver", "Europe/London", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.once.Do(func() {
		s.finder, s.initErr = s.newFinder()
	})
	if s.initErr != nil {
		return "", fmt.Errorf("failed to initialize timezone finder: %w", s.initErr)
	}

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

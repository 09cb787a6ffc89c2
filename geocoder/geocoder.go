// Package geocoder resolves place IDs and place names to coordinates.
//
// Live lookups are not implemented: both operations are stubs that always
// fail with a descriptive error. The API key plumbing exists so a future
// revision can wire the Geocoding API without touching callers.
package geocoder

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosom/google-maps-coordinates/extractor"
)

var (
	// ErrUnsupported is returned for lookups this build cannot perform.
	ErrUnsupported = errors.New("live geocoding is not implemented")
	// ErrNotConfigured is returned when a lookup would need an API key
	// and none is set.
	ErrNotConfigured = errors.New("place name resolution requires a configured API key")
)

type Service struct {
	apiKey string
}

func New(apiKey string) *Service {
	return &Service{apiKey: apiKey}
}

// ResolvePlaceID always fails: place ID lookups need the live API.
func (s *Service) ResolvePlaceID(_ context.Context, id string) (extractor.Coordinates, error) {
	return extractor.Coordinates{}, fmt.Errorf("place id %q could not be resolved: %w", id, ErrUnsupported)
}

// ResolvePlaceName fails with ErrNotConfigured when no API key is set, and
// with ErrUnsupported otherwise.
func (s *Service) ResolvePlaceName(_ context.Context, name string) (extractor.Coordinates, error) {
	if s.apiKey == "" {
		return extractor.Coordinates{}, fmt.Errorf("cannot resolve %q: %w", name, ErrNotConfigured)
	}

	return extractor.Coordinates{}, fmt.Errorf("cannot resolve %q: %w", name, ErrUnsupported)
}

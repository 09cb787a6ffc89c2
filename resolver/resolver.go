// Package resolver runs the extraction pipeline: classify the input,
// extract or geocode, then record the outcome in history.
package resolver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gosom/google-maps-coordinates/extractor"
	"github.com/gosom/google-maps-coordinates/geocoder"
	"github.com/gosom/google-maps-coordinates/history"
	"github.com/gosom/google-maps-coordinates/input"
)

// Outcome is a successful resolution.
type Outcome struct {
	Input       string                `json:"input"`
	Kind        input.Kind            `json:"kind"`
	Coordinates extractor.Coordinates `json:"coordinates"`
	PlaceName   string                `json:"placeName,omitempty"`
	CapturedAt  time.Time             `json:"capturedAt"`
}

// Geocoder is the stubbed place ID / place name lookup.
type Geocoder interface {
	ResolvePlaceID(ctx context.Context, id string) (extractor.Coordinates, error)
	ResolvePlaceName(ctx context.Context, name string) (extractor.Coordinates, error)
}

var _ Geocoder = (*geocoder.Service)(nil)

type Service struct {
	store  *history.Store
	geo    Geocoder
	logger *zap.Logger
}

func NewService(store *history.Store, geo Geocoder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	ans := Service{
		store:  store,
		geo:    geo,
		logger: logger,
	}

	return &ans
}

// Resolve classifies raw and produces coordinates for it. Successful
// resolutions are appended to history; a failed history write is logged but
// does not fail the resolution.
func (s *Service) Resolve(ctx context.Context, raw string, mode extractor.Mode) (Outcome, error) {
	kind := input.Classify(raw)

	var (
		coords    extractor.Coordinates
		placeName string
		err       error
	)

	switch kind {
	case input.KindURL:
		var result extractor.Result

		result, err = extractor.FromURL(raw, mode)
		if err == nil {
			coords = result.Coordinates
			placeName = result.PlaceName
		}
	case input.KindPlaceID:
		coords, err = s.geo.ResolvePlaceID(ctx, raw)
	case input.KindPlaceName:
		coords, err = s.geo.ResolvePlaceName(ctx, raw)
	}

	if err != nil {
		return Outcome{}, err
	}

	entry := history.NewEntry(raw, kind, coords, placeName)

	if err := s.store.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to persist history entry", zap.Error(err))
	}

	ans := Outcome{
		Input:       entry.Input,
		Kind:        entry.Kind,
		Coordinates: entry.Coordinates,
		PlaceName:   entry.PlaceName,
		CapturedAt:  entry.CapturedAt,
	}

	return ans, nil
}

package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosom/google-maps-coordinates/extractor"
	"github.com/gosom/google-maps-coordinates/geocoder"
	"github.com/gosom/google-maps-coordinates/history"
	"github.com/gosom/google-maps-coordinates/history/kvmemory"
	"github.com/gosom/google-maps-coordinates/input"
	"github.com/gosom/google-maps-coordinates/resolver"
)

func newService(t *testing.T) (*resolver.Service, *history.Store) {
	t.Helper()

	store := history.NewStore(context.Background(), kvmemory.New(), nil)
	svc := resolver.NewService(store, geocoder.New(""), nil)

	return svc, store
}

func Test_Resolve_URL(t *testing.T) {
	svc, store := newService(t)

	outcome, err := svc.Resolve(
		context.Background(),
		"https://www.google.com/maps/place/Blue+Bottle+Coffee/@37.7763342,-122.4232375,17z",
		extractor.PreferViewport,
	)
	require.NoError(t, err)

	assert.Equal(t, input.KindURL, outcome.Kind)
	assert.Equal(t, extractor.Coordinates{Lat: 37.7763342, Lng: -122.4232375}, outcome.Coordinates)
	assert.Equal(t, "Blue Bottle Coffee", outcome.PlaceName)
	assert.False(t, outcome.CapturedAt.IsZero())

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, outcome.Coordinates, entries[0].Coordinates)
}

func Test_Resolve_URLWithoutCoordinates(t *testing.T) {
	svc, store := newService(t)

	_, err := svc.Resolve(context.Background(), "https://www.google.com/maps/place/Somewhere", extractor.PreferViewport)
	require.ErrorIs(t, err, extractor.ErrNoCoordinates)

	// Failures never reach history.
	assert.Empty(t, store.Entries())
}

func Test_Resolve_PlaceID(t *testing.T) {
	svc, store := newService(t)

	_, err := svc.Resolve(context.Background(), "ChIJabc123", extractor.PreferViewport)
	require.ErrorIs(t, err, geocoder.ErrUnsupported)
	assert.Empty(t, store.Entries())
}

func Test_Resolve_PlaceName(t *testing.T) {
	svc, store := newService(t)

	_, err := svc.Resolve(context.Background(), "Old port, Limassol", extractor.PreferViewport)
	require.ErrorIs(t, err, geocoder.ErrNotConfigured)
	assert.Empty(t, store.Entries())
}

package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosom/google-maps-coordinates/extractor"
)

func Test_FromURL(t *testing.T) {
	cases := []struct {
		name      string
		url       string
		mode      extractor.Mode
		expected  extractor.Coordinates
		placeName string
	}{
		{
			name:     "viewport marker",
			url:      "https://www.google.com/maps/@12.34,-56.78,15z",
			expected: extractor.Coordinates{Lat: 12.34, Lng: -56.78},
		},
		{
			name:      "exact marker alone",
			url:       "https://www.google.com/maps/place/x/data=!3d1.1!4d2.2",
			expected:  extractor.Coordinates{Lat: 1.1, Lng: 2.2},
			placeName: "x",
		},
		{
			name:      "both markers prefer viewport by default",
			url:       "https://www.google.com/maps/place/x/@12.34,-56.78,17z/data=!3d1.1!4d2.2",
			expected:  extractor.Coordinates{Lat: 12.34, Lng: -56.78},
			placeName: "x",
		},
		{
			name:      "both markers prefer exact",
			url:       "https://www.google.com/maps/place/x/@12.34,-56.78,17z/data=!3d1.1!4d2.2",
			mode:      extractor.PreferExact,
			expected:  extractor.Coordinates{Lat: 1.1, Lng: 2.2},
			placeName: "x",
		},
		{
			name:     "prefer exact falls back to viewport",
			url:      "https://www.google.com/maps/@12.34,-56.78,15z",
			mode:     extractor.PreferExact,
			expected: extractor.Coordinates{Lat: 12.34, Lng: -56.78},
		},
		{
			name:     "ll query parameter",
			url:      "https://maps.google.com/?ll=34.6705954,33.0424567",
			expected: extractor.Coordinates{Lat: 34.6705954, Lng: 33.0424567},
		},
		{
			name:     "q query parameter",
			url:      "https://maps.google.com/?q=-33.8688,151.2093",
			expected: extractor.Coordinates{Lat: -33.8688, Lng: 151.2093},
		},
		{
			name:     "center query parameter",
			url:      "https://maps.google.com/maps?center=48.8584,2.2945&zoom=12",
			expected: extractor.Coordinates{Lat: 48.8584, Lng: 2.2945},
		},
		{
			name:     "bare path segment",
			url:      "https://maps.google.com/maps/37.7763342,-122.4232375",
			expected: extractor.Coordinates{Lat: 37.7763342, Lng: -122.4232375},
		},
		{
			name:     "integer coordinates",
			url:      "https://www.google.com/maps/@-12,56,10z",
			expected: extractor.Coordinates{Lat: -12, Lng: 56},
		},
		{
			name:     "out of range values accepted as-is",
			url:      "https://www.google.com/maps/@123.0,-456.5,10z",
			expected: extractor.Coordinates{Lat: 123.0, Lng: -456.5},
		},
		{
			name:      "place name attached to viewport match",
			url:       "https://www.google.com/maps/place/Blue+Bottle+Coffee/@37.7763342,-122.4232375,17z",
			expected:  extractor.Coordinates{Lat: 37.7763342, Lng: -122.4232375},
			placeName: "Blue Bottle Coffee",
		},
		{
			name:      "place name with escapes attached to exact match",
			url:       "https://www.google.com/maps/place/Caf%C3%A9+Central/data=!3d48.2105!4d16.3663",
			expected:  extractor.Coordinates{Lat: 48.2105, Lng: 16.3663},
			placeName: "Café Central",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := extractor.FromURL(tc.url, tc.mode)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, result.Coordinates)
			assert.Equal(t, tc.placeName, result.PlaceName)
		})
	}
}

func Test_FromURL_NoMatch(t *testing.T) {
	urls := []string{
		"https://www.google.com/maps",
		"https://www.google.com/maps/place/Somewhere",
		"https://maps.google.com/?q=coffee+near+me",
		"not a url at all",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			_, err := extractor.FromURL(u, extractor.PreferViewport)
			require.ErrorIs(t, err, extractor.ErrNoCoordinates)
		})
	}
}

func Test_Coordinates_String(t *testing.T) {
	c := extractor.Coordinates{Lat: 34.670595399999996, Lng: -33.042456699999995}

	assert.Equal(t, "34.670595399999996,-33.042456699999995", c.String())
	assert.Equal(t, "34.670595399999996", c.LatString())
	assert.Equal(t, "-33.042456699999995", c.LngString())
}

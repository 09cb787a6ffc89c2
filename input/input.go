// Package input classifies raw user input into the three kinds of
// lookups the extractor knows how to handle.
package input

import "strings"

// Kind tags an input string. The values double as the persisted
// history tags, so they must stay stable.
type Kind string

const (
	KindURL       Kind = "url"
	KindPlaceID   Kind = "placeId"
	KindPlaceName Kind = "place"
)

// placeIDPrefix is the token Google uses for the vast majority of place IDs.
const placeIDPrefix = "ChIJ"

var mapsFragments = []string{
	"google.com/maps",
	"maps.google.",
	"goo.gl/maps",
	"maps.app.goo.gl",
}

// Classify never fails: anything that is neither a Google Maps URL nor a
// place ID is treated as a place name.
func Classify(s string) Kind {
	s = strings.TrimSpace(s)

	for _, fragment := range mapsFragments {
		if strings.Contains(s, fragment) {
			return KindURL
		}
	}

	if strings.HasPrefix(s, "place_id:") || strings.HasPrefix(s, placeIDPrefix) {
		return KindPlaceID
	}

	return KindPlaceName
}

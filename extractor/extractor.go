// Package extractor pulls coordinate pairs out of Google Maps URLs.
//
// Google encodes coordinates in several inconsistent ways depending on how
// the URL was produced (share dialog, address bar, embed link). The matchers
// here are tried in priority order and the first hit wins, except for the
// viewport/exact pair which is settled by a Mode.
package extractor

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoCoordinates is returned when none of the known URL patterns match.
var ErrNoCoordinates = errors.New("url has no recognizable coordinate pattern")

// Mode selects which marker wins when a URL carries both a viewport
// (@lat,lng) and an exact (!3d!4d) marker.
type Mode int

const (
	// PreferViewport surfaces the @lat,lng map-center marker.
	PreferViewport Mode = iota
	// PreferExact surfaces the !3d!4d precise place marker.
	PreferExact
)

// Coordinates is a raw latitude/longitude pair. Values are taken from the
// URL as-is, without range validation.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the pair in its natural decimal form, unrounded.
func (c Coordinates) String() string {
	return c.LatString() + "," + c.LngString()
}

func (c Coordinates) LatString() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

func (c Coordinates) LngString() string {
	return strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Result is a successful extraction. PlaceName is best-effort: it is parsed
// from the /maps/place/ path segment independently of which coordinate
// marker matched and may be empty.
type Result struct {
	Coordinates Coordinates
	PlaceName   string
}

const decimal = `(-?\d+(?:\.\d+)?)`

var (
	reViewport = regexp.MustCompile(`@` + decimal + `,` + decimal)
	reExact    = regexp.MustCompile(`!3d` + decimal + `!4d` + decimal)
	rePath     = regexp.MustCompile(`/` + decimal + `,` + decimal + `(?:[/?#]|$)`)
	rePlace    = regexp.MustCompile(`/maps/place/([^/@?#]+)`)

	// ll, q and center carry lat,lng directly. Tried in this order.
	reQueryParams = []*regexp.Regexp{
		regexp.MustCompile(`[?&]ll=` + decimal + `,` + decimal),
		regexp.MustCompile(`[?&]q=` + decimal + `,` + decimal),
		regexp.MustCompile(`[?&]center=` + decimal + `,` + decimal),
	}
)

// FromURL locates an embedded coordinate pair in rawURL. When both the
// viewport and the exact marker are present, mode decides which is surfaced.
func FromURL(rawURL string, mode Mode) (Result, error) {
	ans := Result{
		PlaceName: placeName(rawURL),
	}

	coords, ok := markerCoordinates(rawURL, mode)
	if ok {
		ans.Coordinates = coords

		return ans, nil
	}

	for _, re := range reQueryParams {
		if coords, ok := pair(re.FindStringSubmatch(rawURL)); ok {
			ans.Coordinates = coords

			return ans, nil
		}
	}

	if coords, ok := pair(rePath.FindStringSubmatch(rawURL)); ok {
		ans.Coordinates = coords

		return ans, nil
	}

	return Result{}, fmt.Errorf("%w: %s", ErrNoCoordinates, rawURL)
}

func markerCoordinates(rawURL string, mode Mode) (Coordinates, bool) {
	viewport, hasViewport := pair(reViewport.FindStringSubmatch(rawURL))
	exact, hasExact := pair(reExact.FindStringSubmatch(rawURL))

	switch {
	case mode == PreferExact && hasExact:
		return exact, true
	case hasViewport:
		return viewport, true
	case hasExact:
		return exact, true
	default:
		return Coordinates{}, false
	}
}

func pair(matches []string) (Coordinates, bool) {
	if len(matches) < 3 {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return Coordinates{}, false
	}

	lng, err := strconv.ParseFloat(matches[2], 64)
	if err != nil {
		return Coordinates{}, false
	}

	return Coordinates{Lat: lat, Lng: lng}, true
}

func placeName(rawURL string) string {
	matches := rePlace.FindStringSubmatch(rawURL)
	if len(matches) < 2 {
		return ""
	}

	name := strings.ReplaceAll(matches[1], "+", " ")

	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	return name
}

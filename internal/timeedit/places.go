package timeedit

import (
	"net/url"
	"strings"
)

const placesSearchURL = "https://www.kth.se/search"

// sectionMarker prefixes some room tokens in the feed, e.g. "§V01".
const sectionMarker = "§"

// placeURLs rewrites raw room tokens into KTH Places search URLs, 1:1
// and length-preserving. A direct link to the place page would be
// nicer, but the place identifiers are not derivable from the display
// names, so a search URL is the best stable target.
func placeURLs(locations []string) []string {
	out := make([]string, len(locations))
	for i, loc := range locations {
		cleaned := strings.ReplaceAll(loc, sectionMarker, "")

		q := url.Values{}
		q.Set("entityFilter", "kth-place")
		q.Set("lang", "en")
		q.Set("q", cleaned)

		out[i] = placesSearchURL + "?" + q.Encode()
	}
	return out
}

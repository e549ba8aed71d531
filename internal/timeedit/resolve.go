package timeedit

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	appLog "github.com/EdmanJohan/TimeEditAPI/internal/log"
)

// courseTypeCode is TimeEdit's object-type code for courses in the
// search endpoint.
const courseTypeCode = "5"

// ResolveCourse looks up the TimeEdit object identifier for a
// human-readable course code such as "DD1337". The identifier is what
// the reservation feed is keyed on; it is not derivable from the code.
func (c *Client) ResolveCourse(ctx context.Context, courseCode string) (string, error) {
	q := url.Values{}
	q.Set("max", "1")
	q.Set("fr", "t")
	q.Set("partajax", "t")
	q.Set("im", "f")
	q.Set("sid", "3")
	q.Set("search_text", courseCode)
	q.Set("types", courseTypeCode)

	searchURL := c.opts.BaseURL + "objects.html?" + q.Encode()

	body, err := c.getBody(ctx, searchURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parsing search results for %q: %w", courseCode, err)
	}

	// The results partial lists matches as elements carrying the object
	// identifier in data-idonly; with max=1 the first one is the match.
	id, ok := doc.Find("[data-idonly]").First().Attr("data-idonly")
	if !ok || id == "" {
		return "", fmt.Errorf("no search result for course %q: %w", courseCode, ErrNotFound)
	}

	appLog.Debug("course resolved", "course", courseCode, "object_id", id)
	return id, nil
}

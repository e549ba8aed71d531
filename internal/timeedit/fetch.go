package timeedit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	appLog "github.com/EdmanJohan/TimeEditAPI/internal/log"
	"github.com/EdmanJohan/TimeEditAPI/internal/model"
)

// reservationFeed is the top-level shape of TimeEdit's ri.json endpoint.
type reservationFeed struct {
	Reservations []rawReservation `json:"reservations"`
}

// rawReservation is one row of the feed. Dates and times arrive as
// separate strings, and the interesting fields sit at fixed positions in
// the columns array: 3 lecturers, 4 locations (both comma-separated),
// 5 the event type. That positional contract is TimeEdit's, not ours.
type rawReservation struct {
	ID        string   `json:"id"`
	StartDate string   `json:"startdate"`
	StartTime string   `json:"starttime"`
	EndDate   string   `json:"enddate"`
	EndTime   string   `json:"endtime"`
	Columns   []string `json:"columns"`
}

const (
	colLecturers = 3
	colLocation  = 4
	colType      = 5
)

// FetchEvents downloads the reservation feed for a resolved object
// identifier and maps every row into a model.Event. Any row violating
// the feed's shape fails the whole call; there are no partial results.
func (c *Client) FetchEvents(ctx context.Context, objectID string) ([]model.Event, error) {
	// The parameter string is the one the TimeEdit web client sends;
	// only the object identifier varies.
	feedURL := c.opts.BaseURL + "ri.json?h=f&sid=3&p=0.m%2C12.n&objects=" +
		url.QueryEscape(objectID) + "&ox=0&types=0&fe=0&h2=f"

	body, err := c.getBody(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	var feed reservationFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decoding reservation feed for object %s: %w", objectID, ErrMalformedData)
	}
	if feed.Reservations == nil {
		return nil, fmt.Errorf("reservation feed for object %s has no reservations field: %w", objectID, ErrMalformedData)
	}

	events := make([]model.Event, 0, len(feed.Reservations))
	for _, raw := range feed.Reservations {
		ev, err := c.mapReservation(raw)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	appLog.Info("reservations fetched", "object_id", objectID, "event_count", len(events))
	return events, nil
}

func (c *Client) mapReservation(raw rawReservation) (model.Event, error) {
	if len(raw.Columns) <= colType {
		return model.Event{}, fmt.Errorf("reservation %s has %d columns, want at least %d: %w",
			raw.ID, len(raw.Columns), colType+1, ErrMalformedData)
	}

	start, err := parseLocalDateTime(raw.StartDate, raw.StartTime)
	if err != nil {
		return model.Event{}, fmt.Errorf("reservation %s start %q %q: %w",
			raw.ID, raw.StartDate, raw.StartTime, ErrMalformedData)
	}
	end, err := parseLocalDateTime(raw.EndDate, raw.EndTime)
	if err != nil {
		return model.Event{}, fmt.Errorf("reservation %s end %q %q: %w",
			raw.ID, raw.EndDate, raw.EndTime, ErrMalformedData)
	}

	// Splitting an empty string yields [""], a one-element slice. The
	// feed really does ship rows like that and the empty-field filter
	// counts them as non-empty, so keep the split verbatim.
	lecturers := strings.Split(raw.Columns[colLecturers], ", ")
	location := strings.Split(raw.Columns[colLocation], ", ")
	if c.opts.UseKTHPlaces {
		location = placeURLs(location)
	}

	return model.Event{
		StartDate: start,
		EndDate:   end,
		Lecturers: lecturers,
		Location:  location,
		Type:      raw.Columns[colType],
	}, nil
}

// parseLocalDateTime joins the feed's separate date and time strings
// into an ISO-8601 local timestamp. The feed reports minute precision;
// seconds are tolerated.
func parseLocalDateTime(date, clock string) (time.Time, error) {
	joined := date + "T" + clock
	t, err := time.ParseInLocation("2006-01-02T15:04", joined, time.Local)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", joined, time.Local)
}

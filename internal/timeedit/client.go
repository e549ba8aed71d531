// Package timeedit is a read-only client for TimeEdit, the timetabling
// service used by KTH and other universities. It resolves a course code
// to TimeEdit's internal object identifier, fetches the reservation feed
// for that object and shapes the raw rows into filtered calendar events.
package timeedit

import (
	"context"
	"errors"
	"time"

	appLog "github.com/EdmanJohan/TimeEditAPI/internal/log"
	"github.com/EdmanJohan/TimeEditAPI/internal/model"
)

const optionDateLayout = "2006-01-02"

// Options configures a Client. It is copied at construction; changing an
// Options value afterwards has no effect on clients built from it.
type Options struct {
	// BaseURL is the TimeEdit instance root including trailing slash,
	// e.g. "https://cloud.timeedit.net/kth/web/public01/". Required.
	BaseURL string

	// FilterEmpty drops events with no lecturers, no location or an
	// empty type string.
	FilterEmpty bool

	// FilterToSemester keeps only events whose start falls in the
	// current KTH period (see filter.go for the period rule).
	FilterToSemester bool

	// StartDate, if set ("YYYY-MM-DD"), keeps only events whose end is
	// strictly before it.
	StartDate string

	// EndDate ("YYYY-MM-DD") bounds the schedule from the other side:
	// only events starting strictly after it are kept. The stage only
	// runs when UseEndDate is set; it is off by default.
	EndDate string

	// UseEndDate enables the EndDate filter stage.
	UseEndDate bool

	// UseKTHPlaces rewrites location tokens into KTH Places search URLs.
	UseKTHPlaces bool

	// Now supplies the current time for the semester filter. Nil means
	// time.Now.
	Now func() time.Time

	// HTTPClient overrides the outbound HTTP client. Nil means a default
	// client with a 15 second timeout.
	HTTPClient Doer
}

// Client queries one TimeEdit instance. It holds only read-only state
// after construction and is safe for concurrent use.
type Client struct {
	opts Options
	doer Doer
	now  func() time.Time

	// Parsed date bounds; nil when the corresponding option is unset.
	startBound *time.Time
	endBound   *time.Time
}

// NewClient validates opts and returns a Client. Date options are parsed
// here so a bad bound fails construction rather than every fetch.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("timeedit: BaseURL is required")
	}

	c := &Client{
		opts: opts,
		doer: opts.HTTPClient,
		now:  opts.Now,
	}
	if c.doer == nil {
		c.doer = defaultHTTPClient()
	}
	if c.now == nil {
		c.now = time.Now
	}

	if opts.StartDate != "" {
		t, err := time.ParseInLocation(optionDateLayout, opts.StartDate, time.Local)
		if err != nil {
			return nil, errors.Join(errors.New("timeedit: invalid StartDate"), err)
		}
		c.startBound = &t
	}
	if opts.EndDate != "" {
		t, err := time.ParseInLocation(optionDateLayout, opts.EndDate, time.Local)
		if err != nil {
			return nil, errors.Join(errors.New("timeedit: invalid EndDate"), err)
		}
		c.endBound = &t
	}

	return c, nil
}

// Schedule resolves courseCode and returns its filtered event list.
//
// Each stage error propagates: a failed lookup is ErrNotFound, a bad
// HTTP response is a *StatusError and a feed shape violation is
// ErrMalformedData. Callers wanting to inspect intermediate results can
// call ResolveCourse and FetchEvents directly.
func (c *Client) Schedule(ctx context.Context, courseCode string) ([]model.Event, error) {
	id, err := c.ResolveCourse(ctx, courseCode)
	if err != nil {
		return nil, err
	}

	events, err := c.FetchEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	filtered := c.applyFilters(events)
	appLog.Info("schedule ready",
		"course", courseCode,
		"object_id", id,
		"fetched", len(events),
		"kept", len(filtered),
	)
	return filtered, nil
}

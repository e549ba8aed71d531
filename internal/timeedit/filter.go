package timeedit

import (
	"time"

	"github.com/EdmanJohan/TimeEditAPI/internal/model"
)

// applyFilters runs the enabled filter stages in fixed order: semester,
// empty-field, before-date, after-date. Each stage is pure and
// order-preserving; the input slice is never mutated.
func (c *Client) applyFilters(events []model.Event) []model.Event {
	out := events
	if c.opts.FilterToSemester {
		out = filterSemester(out, c.now())
	}
	if c.opts.FilterEmpty {
		out = filterNonEmpty(out)
	}
	if c.startBound != nil {
		out = filterBefore(out, *c.startBound)
	}
	if c.opts.UseEndDate && c.endBound != nil {
		out = filterAfter(out, *c.endBound)
	}
	return out
}

// semesterMonths returns the months of the KTH period containing the
// evaluation month. Spring is February through June, autumn August
// through December. January and July sit between periods and map to an
// empty set, so during those months the semester filter drops
// everything.
func semesterMonths(m time.Month) []time.Month {
	switch {
	case m > time.January && m < time.July:
		return []time.Month{time.January, time.February, time.March, time.April, time.May, time.June}
	case m > time.July && m <= time.December:
		return []time.Month{time.August, time.September, time.October, time.November, time.December}
	default:
		return nil
	}
}

// filterSemester keeps events starting in the current year and within
// the KTH period containing now.
func filterSemester(events []model.Event, now time.Time) []model.Event {
	period := semesterMonths(now.Month())

	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.StartDate.Year() != now.Year() {
			continue
		}
		if !containsMonth(period, ev.StartDate.Month()) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func containsMonth(months []time.Month, m time.Month) bool {
	for _, candidate := range months {
		if candidate == m {
			return true
		}
	}
	return false
}

// filterNonEmpty drops events missing any of lecturers, location or
// type. The three checks are independent; one failing is enough.
func filterNonEmpty(events []model.Event) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if len(ev.Lecturers) == 0 || len(ev.Location) == 0 || ev.Type == "" {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// filterBefore keeps events whose end is strictly before bound. The
// comparison is against EndDate on purpose: an event straddling the
// bound is excluded.
func filterBefore(events []model.Event, bound time.Time) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.EndDate.Before(bound) {
			out = append(out, ev)
		}
	}
	return out
}

// filterAfter keeps events whose start is strictly after bound.
func filterAfter(events []model.Event, bound time.Time) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.StartDate.After(bound) {
			out = append(out, ev)
		}
	}
	return out
}

// Package export turns fetched schedule events into an iCalendar
// document, so a course schedule can be imported into a regular
// calendar application.
package export

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/EdmanJohan/TimeEditAPI/internal/model"
)

// ICS serializes events into an iCalendar document with one VEVENT per
// event. calendarName becomes the calendar NAME property; SUMMARY is the
// event type, LOCATION the joined room list and DESCRIPTION the joined
// lecturer list.
func ICS(events []model.Event, calendarName string) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//TimeEditAPI//Schedule Export//EN")
	if calendarName != "" {
		cal.SetName(calendarName)
	}

	now := time.Now()
	for i, ev := range events {
		// Start time plus index is stable across re-exports of the
		// same schedule.
		uid := fmt.Sprintf("%s-%d@timeedit", ev.StartDate.Format("20060102T1504"), i)

		ve := cal.AddEvent(uid)
		ve.SetDtStampTime(now)
		ve.SetStartAt(ev.StartDate)
		ve.SetEndAt(ev.EndDate)
		if ev.Type != "" {
			ve.SetSummary(ev.Type)
		}
		if loc := strings.Join(ev.Location, ", "); loc != "" {
			ve.SetLocation(loc)
		}
		if desc := strings.Join(ev.Lecturers, ", "); desc != "" {
			ve.SetDescription(desc)
		}
	}

	return cal.Serialize()
}

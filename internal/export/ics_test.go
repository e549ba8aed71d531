package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/EdmanJohan/TimeEditAPI/internal/model"
)

func TestICS(t *testing.T) {
	events := []model.Event{
		{
			StartDate: time.Date(2024, time.April, 10, 10, 0, 0, 0, time.Local),
			EndDate:   time.Date(2024, time.April, 10, 12, 0, 0, 0, time.Local),
			Lecturers: []string{"John Doe", "Jane Roe"},
			Location:  []string{"V01", "V22"},
			Type:      "Föreläsning",
		},
		{
			StartDate: time.Date(2024, time.April, 12, 13, 0, 0, 0, time.Local),
			EndDate:   time.Date(2024, time.April, 12, 15, 0, 0, 0, time.Local),
			Lecturers: []string{"Jane Roe"},
			Location:  []string{"V22"},
			Type:      "Labb",
		},
	}

	doc := ICS(events, "DD1337")

	require.Contains(t, doc, "BEGIN:VCALENDAR")
	require.Contains(t, doc, "END:VCALENDAR")
	require.Equal(t, 2, strings.Count(doc, "BEGIN:VEVENT"))
	require.Equal(t, 2, strings.Count(doc, "END:VEVENT"))
	require.Contains(t, doc, "SUMMARY:Föreläsning")
	require.Contains(t, doc, "SUMMARY:Labb")
	// iCalendar escapes commas in text values.
	require.Contains(t, doc, "LOCATION:V01\\, V22")
}

func TestICSEmptySchedule(t *testing.T) {
	doc := ICS(nil, "DD1337")
	require.Contains(t, doc, "BEGIN:VCALENDAR")
	require.NotContains(t, doc, "BEGIN:VEVENT")
}

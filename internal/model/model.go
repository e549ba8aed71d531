package model

import "time"

// Event is one scheduled course session as reported by the reservation
// feed. It is constructed once per fetch and never mutated afterwards.
type Event struct {
	// StartDate / EndDate are local wall-clock times as reported by the
	// feed. StartDate <= EndDate is expected but passed through unchecked.
	StartDate time.Time
	EndDate   time.Time

	// Lecturers is the ordered lecturer list; may be empty.
	Lecturers []string

	// Location is the ordered room list. When KTH Places resolution is
	// enabled each element is a lookup URL derived 1:1 from the raw token.
	Location []string

	// Type is a short classification such as "Föreläsning" or "Labb";
	// may be empty.
	Type string
}

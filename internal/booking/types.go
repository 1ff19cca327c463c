package booking

import (
	"fmt"
	"time"
)

// Area is where a table stands on the floor.
type Area string

const (
	AreaIndoor  Area = "Indoor"
	AreaOutdoor Area = "Outdoor"
)

// UnassignedTableID is the sentinel table for reservations that have no
// physical table committed yet. It never participates in conflict checks.
const UnassignedTableID = 0

const (
	DefaultSlotMinutes     = 30
	DefaultDurationMinutes = 120
)

// Table is a bookable seating unit. Tables are static configuration,
// immutable for the process lifetime.
type Table struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Area     Area   `json:"area" yaml:"area"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

// Period is one contiguous opening window within a day, e.g. a lunch or
// dinner service. Start and End are "HH:MM" wall-clock times.
type Period struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// OpeningHours maps a weekday to its ordered service periods. A missing or
// empty entry means the restaurant is closed that day.
type OpeningHours map[time.Weekday][]Period

// Reservation is a single booking. A reservation occupies exactly one
// contiguous interval of the schedule's duration starting at Time, even when
// that interval crosses an opening-hours break.
type Reservation struct {
	ID        string `json:"id"`
	GuestName string `json:"guestName"`
	Pax       int    `json:"pax"`
	Date      string `json:"date"` // YYYY-MM-DD, local calendar date
	Time      string `json:"time"` // HH:MM, on a slot boundary
	TableID   int    `json:"tableId"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Comments  string `json:"comments,omitempty"`
}

// Date is a plain calendar date with no time-zone attachment. Weekday
// derivation goes through components only, never through an instant, so a
// booking for "2025-03-01" means the same day in every process.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of week for the calendar date. The fixed location
// does not matter: the triple identifies the weekday by itself.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

package reservations

import (
	"context"
	"fmt"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

// Summary aggregates a date range of the book for the statistics view.
type Summary struct {
	From              string               `json:"from"`
	To                string               `json:"to"`
	TotalReservations int                  `json:"totalReservations"`
	TotalGuests       int                  `json:"totalGuests"`
	AvgPartySize      float64              `json:"avgPartySize"`
	ByDate            map[string]int       `json:"byDate"`
	ByArea            map[booking.Area]int `json:"byArea"`
	ByTable           map[int]int          `json:"byTable"`
	GroupSizes        map[int]int          `json:"groupSizes"`
}

// Summarize computes the statistics for a reservation snapshot. Reservations
// on the unassigned sentinel count toward totals but not toward any area.
func Summarize(rs []booking.Reservation, plan booking.FloorPlan, from, to string) Summary {
	sum := Summary{
		From:       from,
		To:         to,
		ByDate:     make(map[string]int),
		ByArea:     make(map[booking.Area]int),
		ByTable:    make(map[int]int),
		GroupSizes: make(map[int]int),
	}
	for _, r := range rs {
		sum.TotalReservations++
		sum.TotalGuests += r.Pax
		sum.ByDate[r.Date]++
		sum.GroupSizes[r.Pax]++
		if r.TableID != booking.UnassignedTableID {
			sum.ByTable[r.TableID]++
			if t, ok := plan.ByID(r.TableID); ok {
				sum.ByArea[t.Area]++
			}
		}
	}
	if sum.TotalReservations > 0 {
		sum.AvgPartySize = float64(sum.TotalGuests) / float64(sum.TotalReservations)
	}
	return sum
}

// Stats loads the range snapshot and summarizes it.
func (s *Service) Stats(ctx context.Context, from, to string) (Summary, error) {
	if _, err := booking.ParseDate(from); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := booking.ParseDate(to); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if to < from {
		return Summary{}, fmt.Errorf("%w: range end precedes start", ErrInvalid)
	}
	rs, err := s.Store.ListBetween(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(rs, s.Plan, from, to), nil
}

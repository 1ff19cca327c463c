package booking

// SlotState classifies one table×time cell of the timeline grid.
type SlotState int

const (
	// SlotFree is the implicit state of any slot with no occupancy entry;
	// it is eligible to start a new reservation.
	SlotFree SlotState = iota
	// SlotBooked marks a reservation's own start slot.
	SlotBooked
	// SlotCovered marks a slot consumed by an earlier reservation's
	// duration. Covered cells merge visually into the booked block and must
	// never be offered for new-booking creation.
	SlotCovered
)

func (s SlotState) String() string {
	switch s {
	case SlotBooked:
		return "booked"
	case SlotCovered:
		return "covered"
	default:
		return "free"
	}
}

// SlotStatus is the occupancy of one cell. Reservation is set only when
// State is SlotBooked.
type SlotStatus struct {
	State       SlotState
	Reservation *Reservation
}

// Occupancy maps tableID -> slot "HH:MM" -> status. Free slots carry no
// entry; use At for the three-state view.
type Occupancy map[int]map[string]SlotStatus

// At returns the status of a cell, defaulting to free.
func (o Occupancy) At(tableID int, slot string) SlotStatus {
	return o[tableID][slot]
}

// ProjectOccupancy projects a day's reservations onto the slot sequence,
// per table. Each reservation marks its start slot booked and the follow-on
// slots its duration consumes covered, so multi-slot bookings render as one
// block without double-counting.
//
// The projection is deterministic and idempotent. It assumes the per-table
// non-overlap invariant the conflict gate enforces at write time; data
// imported around that gate may collide here, in which case the later entry
// wins for the cell and rendering carries on.
func (s Schedule) ProjectOccupancy(reservations []Reservation, slots []string) Occupancy {
	onGrid := make(map[string]bool, len(slots))
	for _, slot := range slots {
		onGrid[slot] = true
	}

	byTable := make(map[int][]Reservation)
	for _, r := range reservations {
		byTable[r.TableID] = append(byTable[r.TableID], r)
	}

	coveredPerBooking := s.DurationMinutes/s.SlotMinutes - 1

	occ := make(Occupancy, len(byTable))
	for tableID, rs := range byTable {
		cells := make(map[string]SlotStatus)
		for i := range rs {
			r := rs[i]
			cells[r.Time] = SlotStatus{State: SlotBooked, Reservation: &r}
			start := TimeToMinutes(r.Time)
			for j := 1; j <= coveredPerBooking; j++ {
				covered := MinutesToTime(start + j*s.SlotMinutes)
				// A booking near closing runs past the last grid column;
				// only columns that exist get a covered cell.
				if onGrid[covered] {
					cells[covered] = SlotStatus{State: SlotCovered}
				}
			}
		}
		occ[tableID] = cells
	}
	return occ
}

package booking

// HasConflict reports whether the candidate's occupancy interval overlaps an
// existing reservation on the same table and date. existing must be the full
// snapshot for correctness; the scan is O(n), fine at restaurant volumes.
//
// excludeID skips one reservation by ID, so an update never conflicts with
// the record being edited. Pass "" when creating. Create and update share
// this single code path so the overlap rule is defined exactly once.
//
// Intervals are half-open [start, start+duration): a reservation starting
// exactly when another ends is not a conflict. Reservations on the
// unassigned sentinel table represent intent without a committed table and
// never conflict.
func (s Schedule) HasConflict(candidate Reservation, existing []Reservation, excludeID string) bool {
	if candidate.TableID == UnassignedTableID {
		return false
	}

	start := TimeToMinutes(candidate.Time)
	end := start + s.DurationMinutes

	for _, r := range existing {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if r.TableID != candidate.TableID || r.Date != candidate.Date {
			continue
		}
		rStart := TimeToMinutes(r.Time)
		rEnd := rStart + s.DurationMinutes
		if start < rEnd && end > rStart {
			return true
		}
	}
	return false
}

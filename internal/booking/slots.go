package booking

// Schedule derives bookable time slots from weekly opening hours. The zero
// value is unusable; build one with NewSchedule or from config.
type Schedule struct {
	Hours           OpeningHours
	SlotMinutes     int
	DurationMinutes int
}

func NewSchedule(hours OpeningHours) Schedule {
	return Schedule{
		Hours:           hours,
		SlotMinutes:     DefaultSlotMinutes,
		DurationMinutes: DefaultDurationMinutes,
	}
}

// Slots returns the ordered valid reservation start times for a date. A slot
// qualifies only if the full reservation duration fits before the period
// closes; the last valid start is period end minus duration. An empty result
// means the restaurant is closed that day.
//
// Periods are walked in configured order and never merged, so a service
// break simply shows up as a gap in the sequence.
func (s Schedule) Slots(date Date) []string {
	var slots []string
	for _, p := range s.Hours[date.Weekday()] {
		cur := TimeToMinutes(p.Start)
		last := TimeToMinutes(p.End) - s.DurationMinutes
		for cur <= last {
			slots = append(slots, MinutesToTime(cur))
			cur += s.SlotMinutes
		}
	}
	return slots
}

// GridSlots returns every slot up to the raw period end, including trailing
// slots a reservation could not start in. It exists only to label timeline
// columns; anything offered as a bookable start time must come from Slots.
func (s Schedule) GridSlots(date Date) []string {
	var slots []string
	for _, p := range s.Hours[date.Weekday()] {
		cur := TimeToMinutes(p.Start)
		end := TimeToMinutes(p.End)
		for cur < end {
			slots = append(slots, MinutesToTime(cur))
			cur += s.SlotMinutes
		}
	}
	return slots
}

// HasSlot reports whether t is a valid bookable start time on date.
func (s Schedule) HasSlot(date Date, t string) bool {
	for _, slot := range s.Slots(date) {
		if slot == t {
			return true
		}
	}
	return false
}

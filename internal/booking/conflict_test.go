package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func res(id string, tableID int, date, start string) Reservation {
	return Reservation{ID: id, GuestName: "Guest", Pax: 2, Date: date, Time: start, TableID: tableID}
}

func TestHasConflict(t *testing.T) {
	s := NewSchedule(DefaultOpeningHours())
	existing := []Reservation{res("a", 3, "2025-06-02", "12:00")}

	tests := []struct {
		name      string
		candidate Reservation
		excludeID string
		want      bool
	}{
		{
			name:      "overlap on same table and date",
			candidate: res("", 3, "2025-06-02", "13:00"),
			want:      true,
		},
		{
			name:      "identical start",
			candidate: res("", 3, "2025-06-02", "12:00"),
			want:      true,
		},
		{
			name:      "candidate starts exactly at existing end",
			candidate: res("", 3, "2025-06-02", "14:00"),
			want:      false,
		},
		{
			name:      "candidate ends exactly at existing start",
			candidate: res("", 3, "2025-06-02", "10:00"),
			want:      false,
		},
		{
			name:      "different table",
			candidate: res("", 4, "2025-06-02", "12:00"),
			want:      false,
		},
		{
			name:      "different date",
			candidate: res("", 3, "2025-06-03", "12:00"),
			want:      false,
		},
		{
			name:      "update excludes itself",
			candidate: res("a", 3, "2025-06-02", "12:30"),
			excludeID: "a",
			want:      false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.HasConflict(tc.candidate, existing, tc.excludeID)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasConflictUnassignedNeverConflicts(t *testing.T) {
	s := NewSchedule(DefaultOpeningHours())
	existing := []Reservation{res("a", UnassignedTableID, "2025-06-02", "12:00")}

	// Same time, same day, both unassigned: no conflict either direction.
	candidate := res("", UnassignedTableID, "2025-06-02", "12:00")
	assert.False(t, s.HasConflict(candidate, existing, ""))
	assert.False(t, s.HasConflict(existing[0], []Reservation{candidate}, ""))
}

func TestHasConflictScansFullSet(t *testing.T) {
	s := NewSchedule(DefaultOpeningHours())
	existing := []Reservation{
		res("a", 3, "2025-06-02", "11:00"),
		res("b", 5, "2025-06-02", "12:00"),
		res("c", 3, "2025-06-02", "18:00"),
	}

	assert.True(t, s.HasConflict(res("", 3, "2025-06-02", "19:00"), existing, ""))
	assert.False(t, s.HasConflict(res("", 3, "2025-06-02", "13:00"), existing, ""))
}

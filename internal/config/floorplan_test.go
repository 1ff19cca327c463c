package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

func writeFloorPlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "floorplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFloorPlanDefaults(t *testing.T) {
	plan, schedule, err := LoadFloorPlan("")
	require.NoError(t, err)
	assert.Len(t, plan.Tables, 31)
	assert.Equal(t, booking.DefaultSlotMinutes, schedule.SlotMinutes)
	assert.Equal(t, booking.DefaultDurationMinutes, schedule.DurationMinutes)
}

func TestLoadFloorPlanOverrides(t *testing.T) {
	path := writeFloorPlan(t, `
slot_minutes: 15
duration_minutes: 90
tables:
  - {id: 0, name: Unassigned, area: Indoor, capacity: 0}
  - {id: 1, name: Bar 1, area: Indoor, capacity: 2}
  - {id: 2, name: Terrace 1, area: Outdoor, capacity: 6}
opening_hours:
  3:
    - {start: "10:00", end: "14:00"}
`)

	plan, schedule, err := LoadFloorPlan(path)
	require.NoError(t, err)

	assert.Len(t, plan.Tables, 3)
	assert.Equal(t, 15, schedule.SlotMinutes)
	assert.Equal(t, 90, schedule.DurationMinutes)

	wednesday := booking.Date{Year: 2025, Month: time.June, Day: 4}
	require.Equal(t, time.Wednesday, wednesday.Weekday())
	slots := schedule.Slots(wednesday)
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "12:30", slots[len(slots)-1]) // 14:00 - 90min

	// Every other day is closed in the override.
	assert.Empty(t, schedule.Slots(booking.Date{Year: 2025, Month: time.June, Day: 5}))
}

func TestLoadFloorPlanRejectsBadFiles(t *testing.T) {
	_, _, err := LoadFloorPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	noSentinel := writeFloorPlan(t, `
tables:
  - {id: 1, name: T1, area: Indoor, capacity: 4}
`)
	_, _, err = LoadFloorPlan(noSentinel)
	assert.Error(t, err)

	badWeekday := writeFloorPlan(t, `
opening_hours:
  7:
    - {start: "10:00", end: "14:00"}
`)
	_, _, err = LoadFloorPlan(badWeekday)
	assert.Error(t, err)

	badGranularity := writeFloorPlan(t, `
slot_minutes: 45
duration_minutes: 120
`)
	_, _, err = LoadFloorPlan(badGranularity)
	assert.Error(t, err)
}

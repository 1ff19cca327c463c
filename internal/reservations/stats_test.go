package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

func TestSummarize(t *testing.T) {
	plan := booking.DefaultFloorPlan()
	rs := []booking.Reservation{
		{ID: "a", GuestName: "A", Pax: 2, Date: "2025-06-02", Time: "12:00", TableID: 1},
		{ID: "b", GuestName: "B", Pax: 4, Date: "2025-06-02", Time: "18:00", TableID: 12},
		{ID: "c", GuestName: "C", Pax: 2, Date: "2025-06-03", Time: "12:00", TableID: booking.UnassignedTableID},
	}

	sum := Summarize(rs, plan, "2025-06-02", "2025-06-03")

	assert.Equal(t, 3, sum.TotalReservations)
	assert.Equal(t, 8, sum.TotalGuests)
	assert.InDelta(t, 8.0/3.0, sum.AvgPartySize, 1e-9)
	assert.Equal(t, map[string]int{"2025-06-02": 2, "2025-06-03": 1}, sum.ByDate)
	// The unassigned booking counts toward totals but no area or table.
	assert.Equal(t, map[booking.Area]int{booking.AreaIndoor: 1, booking.AreaOutdoor: 1}, sum.ByArea)
	assert.Equal(t, map[int]int{1: 1, 12: 1}, sum.ByTable)
	assert.Equal(t, map[int]int{2: 2, 4: 1}, sum.GroupSizes)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, booking.DefaultFloorPlan(), "2025-06-02", "2025-06-02")
	assert.Zero(t, sum.TotalReservations)
	assert.Zero(t, sum.AvgPartySize)
}

func TestServiceStats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := validInput()
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.Date = "2025-06-09" // outside the queried range
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)

	sum, err := svc.Stats(ctx, "2025-06-01", "2025-06-07")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalReservations)

	_, err = svc.Stats(ctx, "2025-06-07", "2025-06-01")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.Stats(ctx, "junk", "2025-06-07")
	assert.ErrorIs(t, err, ErrInvalid)
}

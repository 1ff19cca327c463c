package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

type recordingSink struct {
	created, updated, deleted []booking.Reservation
	languages                 []string
}

func (r *recordingSink) ReservationCreated(res booking.Reservation, lang string) {
	r.created = append(r.created, res)
	r.languages = append(r.languages, lang)
}

func (r *recordingSink) ReservationUpdated(res booking.Reservation, lang string) {
	r.updated = append(r.updated, res)
	r.languages = append(r.languages, lang)
}

func (r *recordingSink) ReservationDeleted(res booking.Reservation) {
	r.deleted = append(r.deleted, res)
}

func newTestService(sinks ...EventSink) *Service {
	return &Service{
		Store:    NewMemoryStore(),
		Plan:     booking.DefaultFloorPlan(),
		Schedule: booking.NewSchedule(booking.DefaultOpeningHours()),
		Sinks:    sinks,
	}
}

// 2025-06-02 is a Monday with continuous 11:00-22:00 service.
func validInput() Input {
	return Input{
		GuestName: "Ada Muang",
		Pax:       4,
		Date:      "2025-06-02",
		Time:      "18:00",
		TableID:   3,
		Email:     "ada@example.com",
		Language:  "de",
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := validInput()
	first, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	in.TableID = 4
	second, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateRejectsConflict(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Time = "19:00" // overlaps 18:00-20:00
	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrConflict)

	// Touching interval is fine: 20:00 starts exactly at the first booking's
	// end.
	in.Time = "20:00"
	_, err = svc.Create(ctx, in)
	assert.NoError(t, err)
}

func TestCreateUnassignedTableNeverConflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := validInput()
	in.TableID = booking.UnassignedTableID
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)
	_, err = svc.Create(ctx, in)
	assert.NoError(t, err)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"empty guest name", func(in *Input) { in.GuestName = "  " }},
		{"zero pax", func(in *Input) { in.Pax = 0 }},
		{"bad date", func(in *Input) { in.Date = "02.06.2025" }},
		{"unknown table", func(in *Input) { in.TableID = 99 }},
		{"off-slot time", func(in *Input) { in.Time = "18:15" }},
		{"time past closing", func(in *Input) { in.Time = "20:30" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCreateRejectsClosedDay(t *testing.T) {
	svc := newTestService()
	svc.Schedule = booking.NewSchedule(booking.OpeningHours{}) // closed every day

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUpdateExcludesSelfFromConflictCheck(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	// Shift by one slot on the same table: overlaps its own old interval,
	// which must not count.
	in := validInput()
	in.Time = "18:30"
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "18:30", updated.Time)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "18:30", stored.Time)
}

func TestUpdateStillConflictsWithOthers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput()) // table 3, 18:00
	require.NoError(t, err)

	other := validInput()
	other.Time = "11:00"
	created, err := svc.Create(ctx, other)
	require.NoError(t, err)

	other.Time = "17:00" // 17:00-19:00 overlaps the 18:00 booking
	_, err = svc.Update(ctx, created.ID, other)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService()
	_, err := svc.Update(context.Background(), "missing", validInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
	require.Len(t, sink.deleted, 1)
	assert.Equal(t, created.ID, sink.deleted[0].ID)
}

func TestEventsFanOutOnSuccessOnly(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.Len(t, sink.created, 1)
	assert.Equal(t, created.ID, sink.created[0].ID)
	assert.Equal(t, []string{"de"}, sink.languages)

	// A conflicting create must not emit anything.
	_, err = svc.Create(ctx, validInput())
	require.ErrorIs(t, err, ErrConflict)
	assert.Len(t, sink.created, 1)

	in := validInput()
	in.Time = "12:00"
	_, err = svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Len(t, sink.updated, 1)
}

func TestListByDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := validInput()
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.Date = "2025-06-03"
	in.Time = "12:00"
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)

	day, err := svc.ListByDate(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Len(t, day, 1)
	assert.Equal(t, "2025-06-02", day[0].Date)
}

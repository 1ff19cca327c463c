package reservations

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

// Input is everything staff submit for a reservation. Language selects the
// guest notification locale and is not persisted.
type Input struct {
	GuestName string `json:"guestName"`
	Pax       int    `json:"pax"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	TableID   int    `json:"tableId"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Comments  string `json:"comments"`
	Language  string `json:"language"`
}

// EventSink receives the outcome of successful writes. Sinks must not block;
// delivery is best effort and never rolls a write back.
type EventSink interface {
	ReservationCreated(r booking.Reservation, language string)
	ReservationUpdated(r booking.Reservation, language string)
	ReservationDeleted(r booking.Reservation)
}

// Service is the write path for the book: validate, conflict-check against a
// fresh snapshot, persist, fan out events. It holds no reservation state of
// its own.
type Service struct {
	Store    Store
	Plan     booking.FloorPlan
	Schedule booking.Schedule
	Sinks    []EventSink
}

// Create validates and conflict-checks a new reservation, then persists it
// under a fresh collision-resistant ID.
func (s *Service) Create(ctx context.Context, in Input) (booking.Reservation, error) {
	r, err := s.buildReservation(in)
	if err != nil {
		return booking.Reservation{}, err
	}
	r.ID = uuid.NewString()

	existing, err := s.Store.ListByDate(ctx, r.Date)
	if err != nil {
		return booking.Reservation{}, fmt.Errorf("load day snapshot: %w", err)
	}
	if s.Schedule.HasConflict(r, existing, "") {
		return booking.Reservation{}, ErrConflict
	}

	if err := s.Store.Create(ctx, r); err != nil {
		return booking.Reservation{}, err
	}
	for _, sink := range s.Sinks {
		sink.ReservationCreated(r, in.Language)
	}
	return r, nil
}

// Update mutates an existing reservation in place. The record being edited
// is excluded from the conflict check so a reservation never conflicts with
// itself.
func (s *Service) Update(ctx context.Context, id string, in Input) (booking.Reservation, error) {
	if _, err := s.Store.GetByID(ctx, id); err != nil {
		return booking.Reservation{}, err
	}

	r, err := s.buildReservation(in)
	if err != nil {
		return booking.Reservation{}, err
	}
	r.ID = id

	existing, err := s.Store.ListByDate(ctx, r.Date)
	if err != nil {
		return booking.Reservation{}, fmt.Errorf("load day snapshot: %w", err)
	}
	if s.Schedule.HasConflict(r, existing, id) {
		return booking.Reservation{}, ErrConflict
	}

	if err := s.Store.Update(ctx, r); err != nil {
		return booking.Reservation{}, err
	}
	for _, sink := range s.Sinks {
		sink.ReservationUpdated(r, in.Language)
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	r, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	for _, sink := range s.Sinks {
		sink.ReservationDeleted(r)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (booking.Reservation, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]booking.Reservation, error) {
	return s.Store.ListByDate(ctx, date)
}

// buildReservation validates the input against the floor plan and schedule.
// The slot-boundary check uses the strict slot sequence: a time that only
// shows up as a grid column is not bookable.
func (s *Service) buildReservation(in Input) (booking.Reservation, error) {
	if strings.TrimSpace(in.GuestName) == "" {
		return booking.Reservation{}, fmt.Errorf("%w: guest name is required", ErrInvalid)
	}
	if in.Pax < 1 {
		return booking.Reservation{}, fmt.Errorf("%w: pax must be at least 1", ErrInvalid)
	}
	date, err := booking.ParseDate(in.Date)
	if err != nil {
		return booking.Reservation{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, ok := s.Plan.ByID(in.TableID); !ok {
		return booking.Reservation{}, fmt.Errorf("%w: unknown table %d", ErrInvalid, in.TableID)
	}
	if !s.Schedule.HasSlot(date, in.Time) {
		return booking.Reservation{}, fmt.Errorf("%w: %s is not a bookable time on %s", ErrInvalid, in.Time, in.Date)
	}
	return booking.Reservation{
		GuestName: strings.TrimSpace(in.GuestName),
		Pax:       in.Pax,
		Date:      in.Date,
		Time:      in.Time,
		TableID:   in.TableID,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Comments:  strings.TrimSpace(in.Comments),
	}, nil
}

package reservations

import (
	"context"
	"errors"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

var (
	// ErrNotFound means no reservation exists with the given ID.
	ErrNotFound = errors.New("reservation not found")
	// ErrConflict is the normal rejected outcome of the conflict gate, not a
	// fault.
	ErrConflict = errors.New("this table is already booked for the selected time slot")
	// ErrInvalid wraps validation failures on write input.
	ErrInvalid = errors.New("invalid reservation")
)

// Store is the persistence collaborator. It receives validated,
// conflict-checked records and hands back the authoritative set the core
// operates on. Implementations must return copies the caller may hold as an
// immutable snapshot.
type Store interface {
	Create(ctx context.Context, r booking.Reservation) error
	Update(ctx context.Context, r booking.Reservation) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (booking.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]booking.Reservation, error)
	ListBetween(ctx context.Context, from, to string) ([]booking.Reservation, error)
}

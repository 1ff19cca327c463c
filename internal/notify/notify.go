package notify

import (
	"context"
	"log"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

// Sender delivers a rendered email. Implementations own their own timeouts.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

type job struct {
	kind     Kind
	res      booking.Reservation
	language string
}

// Queue decouples guest notifications from the write path: writes enqueue
// and return, a single worker goroutine delivers. A full queue or a failed
// send drops the message with a log line; mail is best effort and never
// blocks or rolls back a booking.
type Queue struct {
	sender Sender
	jobs   chan job
}

func NewQueue(sender Sender) *Queue {
	return &Queue{sender: sender, jobs: make(chan job, 64)}
}

// Run delivers queued messages until ctx is done.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-q.jobs:
			if err := q.sender.Send(ctx, BuildEmail(j.kind, j.res, j.language)); err != nil {
				log.Printf("notify: send %s for reservation %s failed: %v", j.kind, j.res.ID, err)
			}
		}
	}
}

func (q *Queue) enqueue(kind Kind, r booking.Reservation, language string) {
	if r.Email == "" {
		return
	}
	select {
	case q.jobs <- job{kind: kind, res: r, language: language}:
	default:
		log.Printf("notify: queue full, dropping %s mail for reservation %s", kind, r.ID)
	}
}

// ReservationCreated implements the reservation event sink.
func (q *Queue) ReservationCreated(r booking.Reservation, language string) {
	q.enqueue(KindConfirmed, r, language)
}

func (q *Queue) ReservationUpdated(r booking.Reservation, language string) {
	q.enqueue(KindUpdated, r, language)
}

// ReservationDeleted is a no-op: cancellations are not mailed, staff phone
// the guest.
func (q *Queue) ReservationDeleted(booking.Reservation) {}

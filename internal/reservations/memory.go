package reservations

import (
	"context"
	"sort"
	"sync"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

// MemoryStore keeps the book in process memory. It backs dev mode and tests;
// reads hand out copy-on-read snapshots, never live references.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]booking.Reservation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]booking.Reservation)}
}

func (m *MemoryStore) Create(ctx context.Context, r booking.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[r.ID] = r
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, r booking.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[r.ID]; !ok {
		return ErrNotFound
	}
	m.byID[r.ID] = r
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (booking.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.byID[id]
	if !ok {
		return booking.Reservation{}, ErrNotFound
	}
	return r, nil
}

func (m *MemoryStore) ListByDate(ctx context.Context, date string) ([]booking.Reservation, error) {
	return m.list(func(r booking.Reservation) bool { return r.Date == date })
}

func (m *MemoryStore) ListBetween(ctx context.Context, from, to string) ([]booking.Reservation, error) {
	return m.list(func(r booking.Reservation) bool { return r.Date >= from && r.Date <= to })
}

func (m *MemoryStore) list(keep func(booking.Reservation) bool) ([]booking.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []booking.Reservation
	for _, r := range m.byID {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].TableID < out[j].TableID
	})
	return out, nil
}

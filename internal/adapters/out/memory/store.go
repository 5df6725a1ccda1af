// Package memory provides the process-scoped entity store of the trip engine and
// the in-memory implementations of its ports: a unit of work with commit-time
// rollback, snapshot readers, a keyed FIFO lock and an append-only event log.
//
// The Store owns the canonical state. Readers take the read lock and return
// copies; only a committing UnitOfWork takes the write lock, and only for the
// duration of applying its staged copies.
package memory

import (
	"sync"

	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/vehicle"
)

// entity is an aggregate the store can key and copy.
type entity[T any] interface {
	ID() kernel.UUID
	Clone() T
}

// table keeps rows keyed by id in insertion order. It is not synchronised.
type table[T entity[T]] struct {
	rows  map[kernel.UUID]T
	order []kernel.UUID
}

func newTable[T entity[T]]() *table[T] {
	return &table[T]{rows: make(map[kernel.UUID]T)}
}

func (t *table[T]) get(id kernel.UUID) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return row.Clone(), true
}

func (t *table[T]) has(id kernel.UUID) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) put(row T) {
	id := row.ID()
	if _, existed := t.rows[id]; !existed {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id].Clone())
	}
	return out
}

// Store is the in-memory entity store. Create it once at startup with NewStore
// and share it between the unit of work factory and the readers.
type Store struct {
	mu       sync.RWMutex
	trips    *table[*trip.Trip]
	vehicles *table[*vehicle.Vehicle]
	drivers  *table[*driver.Driver]
}

func NewStore() *Store {
	return &Store{
		trips:    newTable[*trip.Trip](),
		vehicles: newTable[*vehicle.Vehicle](),
		drivers:  newTable[*driver.Driver](),
	}
}

// TripIDs returns the ids of all trips in creation order.
func (s *Store) TripIDs() []kernel.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]kernel.UUID, len(s.trips.order))
	copy(ids, s.trips.order)
	return ids
}

// apply writes every staged row under the write lock.
func (s *Store) apply(c *changes) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyTable(s.trips, c.trips)
	applyTable(s.vehicles, c.vehicles)
	applyTable(s.drivers, c.drivers)
}

func applyTable[T entity[T]](t *table[T], set *changeSet[T]) {
	for _, row := range set.rows {
		t.put(row.Clone())
	}
}

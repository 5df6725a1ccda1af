package memory

import (
	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/vehicle"
)

// changeSet holds the rows staged by one unit of work, in staging order.
type changeSet[T entity[T]] struct {
	rows  []T
	index map[kernel.UUID]int
}

func newChangeSet[T entity[T]]() *changeSet[T] {
	return &changeSet[T]{index: make(map[kernel.UUID]int)}
}

func (c *changeSet[T]) get(id kernel.UUID) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.rows[i].Clone(), true
}

func (c *changeSet[T]) has(id kernel.UUID) bool {
	_, ok := c.index[id]
	return ok
}

func (c *changeSet[T]) stage(row T) {
	id := row.ID()
	if i, ok := c.index[id]; ok {
		c.rows[i] = row.Clone()
		return
	}
	c.index[id] = len(c.rows)
	c.rows = append(c.rows, row.Clone())
}

type changes struct {
	trips    *changeSet[*trip.Trip]
	vehicles *changeSet[*vehicle.Vehicle]
	drivers  *changeSet[*driver.Driver]
}

func newChanges() *changes {
	return &changes{
		trips:    newChangeSet[*trip.Trip](),
		vehicles: newChangeSet[*vehicle.Vehicle](),
		drivers:  newChangeSet[*driver.Driver](),
	}
}

func (c *changes) isEmpty() bool {
	return len(c.trips.rows) == 0 && len(c.vehicles.rows) == 0 && len(c.drivers.rows) == 0
}

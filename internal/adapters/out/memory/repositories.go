package memory

import (
	"context"
	"fmt"

	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/core/ports"
	"tripflow/internal/pkg/errs"
)

// stagedRepository reads through the unit of work's change set to the store and
// writes only to the change set.
type stagedRepository[T entity[T]] struct {
	uow    *UnitOfWork
	name   string
	staged func() *changeSet[T]
	table  func() *table[T]
}

func (r stagedRepository[T]) add(aggregate T) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	id := aggregate.ID()
	if r.staged().has(id) || r.exists(id) {
		return errs.NewValueIsInvalidErrorWithCause(r.name+" id", fmt.Errorf("%s %s already exists", r.name, id))
	}
	r.staged().stage(aggregate)
	return nil
}

func (r stagedRepository[T]) update(aggregate T) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	id := aggregate.ID()
	if !r.staged().has(id) && !r.exists(id) {
		return errs.NewObjectNotFoundError(r.name, id)
	}
	r.staged().stage(aggregate)
	return nil
}

func (r stagedRepository[T]) get(id kernel.UUID) (T, error) {
	if err := r.uow.ensureActive(); err != nil {
		var zero T
		return zero, err
	}
	if row, ok := r.staged().get(id); ok {
		return row, nil
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	row, ok := r.table().get(id)
	if !ok {
		var zero T
		return zero, errs.NewObjectNotFoundError(r.name, id)
	}
	return row, nil
}

func (r stagedRepository[T]) exists(id kernel.UUID) bool {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	return r.table().has(id)
}

type tripRepository struct {
	stagedRepository[*trip.Trip]
}

var _ ports.TripRepository = tripRepository{}

func (r tripRepository) Add(_ context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.add(aggregate)
}

func (r tripRepository) Update(_ context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.update(aggregate)
}

func (r tripRepository) Get(_ context.Context, id kernel.UUID) (*trip.Trip, error) {
	return r.get(id)
}

type vehicleRepository struct {
	stagedRepository[*vehicle.Vehicle]
}

var _ ports.VehicleRepository = vehicleRepository{}

func (r vehicleRepository) Add(_ context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.add(aggregate)
}

func (r vehicleRepository) Update(_ context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.update(aggregate)
}

func (r vehicleRepository) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(id)
}

type driverRepository struct {
	stagedRepository[*driver.Driver]
}

var _ ports.DriverRepository = driverRepository{}

func (r driverRepository) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.add(aggregate)
}

func (r driverRepository) Update(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.update(aggregate)
}

func (r driverRepository) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(id)
}

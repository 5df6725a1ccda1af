package memory

import (
	"context"

	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/core/ports"
	"tripflow/internal/pkg/errs"
)

// TripReader serves committed trips from the store.
type TripReader struct {
	store *Store
}

var _ ports.TripReader = (*TripReader)(nil)

func NewTripReader(store *Store) *TripReader {
	return &TripReader{store: store}
}

func (r *TripReader) Get(_ context.Context, id kernel.UUID) (*trip.Trip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.trips.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("trip", id)
	}
	return t, nil
}

func (r *TripReader) List(_ context.Context, filter ports.TripFilter) ([]*trip.Trip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*trip.Trip, 0, len(r.store.trips.order))
	for _, id := range r.store.trips.order {
		t := r.store.trips.rows[id]
		if filter.Matches(t) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

// VehicleReader serves committed vehicles from the store.
type VehicleReader struct {
	store *Store
}

var _ ports.VehicleReader = (*VehicleReader)(nil)

func NewVehicleReader(store *Store) *VehicleReader {
	return &VehicleReader{store: store}
}

func (r *VehicleReader) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	v, ok := r.store.vehicles.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicle", id)
	}
	return v, nil
}

func (r *VehicleReader) List(_ context.Context) ([]*vehicle.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.vehicles.all(), nil
}

// DriverReader serves committed drivers from the store.
type DriverReader struct {
	store *Store
}

var _ ports.DriverReader = (*DriverReader)(nil)

func NewDriverReader(store *Store) *DriverReader {
	return &DriverReader{store: store}
}

func (r *DriverReader) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.drivers.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}
	return d, nil
}

func (r *DriverReader) List(_ context.Context) ([]*driver.Driver, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.drivers.all(), nil
}

package ports

import (
	"context"

	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/vehicle"
)

// VehicleRepository is the write-side view of vehicles inside a unit of work.
type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}

// DriverRepository is the write-side view of drivers inside a unit of work.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}

// VehicleReader lists committed vehicles in registration order.
type VehicleReader interface {
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
	List(ctx context.Context) ([]*vehicle.Vehicle, error)
}

// DriverReader lists committed drivers in registration order.
type DriverReader interface {
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
	List(ctx context.Context) ([]*driver.Driver, error)
}

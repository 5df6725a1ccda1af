package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
//
// Commit appends the journal to the event store, then makes the staged state
// visible, then publishes the events. If the append fails the staged state is
// discarded and errs.ErrStateIsInconsistent is returned.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	TripRepository() TripRepository
	VehicleRepository() VehicleRepository
	DriverRepository() DriverRepository
	Journal() Journal
}

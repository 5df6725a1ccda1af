// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-entity locking,
// a fresh read inside a unit of work, the domain change, journaled events and commit.
package commands

import (
	"context"

	"tripflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TripRepoFactory provides access to the trip repository within a unit of work.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a unit of work.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DriverRepoFactory provides access to the driver repository within a unit of work.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// JournalFactory provides the event journal of a unit of work.
	JournalFactory interface {
		Journal() ports.Journal
	}

	// TripUoW manages units of work that only touch trips.
	TripUoW interface {
		TxManager
		TripRepoFactory
		JournalFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// FleetUoW manages units of work over vehicles and drivers.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
		DriverRepoFactory
		JournalFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// UoW spans trips and the fleet. Used when a command cross-checks references,
	// e.g. a new trip naming its driver and vehicle.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if _, err := uow.DriverRepository().Get(ctx, driverID); err != nil {
	//       return err
	//   }
	//   err = uow.TripRepository().Add(ctx, t)
	//   uow.Journal().RecordAudit(entry)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TripRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
		JournalFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

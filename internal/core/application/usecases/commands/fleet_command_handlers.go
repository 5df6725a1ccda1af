package commands

import (
	"context"
	"fmt"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// RegisterVehicleCommandHandler adds vehicles to the fleet.
type RegisterVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
	locker     ports.EntityLocker
	clock      clockwork.Clock
}

func NewRegisterVehicleCommandHandler(
	uowFactory FleetUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{uowFactory: uowFactory, locker: locker, clock: clock}
}

func (h *RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.LicensePlate(), cmd.Make(), cmd.Model(), cmd.DriverID())
	if err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if v.DriverID() != nil {
		if _, err = uow.DriverRepository().Get(ctx, *v.DriverID()); err != nil {
			return err
		}
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}

	if err = recordAudit(uow.Journal(), audit.VehicleEntity, v.ID(), audit.ActionVehicleCreated,
		fmt.Sprintf("Vehicle %s (%s %s) registered.", v.LicensePlate(), v.Make(), v.Model()),
		cmd.Actor(), audit.ActionEntry, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RegisterDriverCommandHandler adds drivers to the fleet.
type RegisterDriverCommandHandler struct {
	uowFactory FleetUoWFactory
	locker     ports.EntityLocker
	clock      clockwork.Clock
}

func NewRegisterDriverCommandHandler(
	uowFactory FleetUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{uowFactory: uowFactory, locker: locker, clock: clock}
}

func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.License(), cmd.AssignedVehicleID())
	if err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if d.AssignedVehicleID() != nil {
		if _, err = uow.VehicleRepository().Get(ctx, *d.AssignedVehicleID()); err != nil {
			return err
		}
	}

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return err
	}

	if err = recordAudit(uow.Journal(), audit.DriverEntity, d.ID(), audit.ActionDriverCreated,
		fmt.Sprintf("Driver %s (%s) registered.", d.Name(), d.License()),
		cmd.Actor(), audit.ActionEntry, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ChangeVehicleStatusCommandHandler moves a vehicle between fleet statuses.
// Writes one update audit entry and one vehicle_status activity.
type ChangeVehicleStatusCommandHandler struct {
	uowFactory FleetUoWFactory
	locker     ports.EntityLocker
	clock      clockwork.Clock
}

func NewChangeVehicleStatusCommandHandler(
	uowFactory FleetUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{uowFactory: uowFactory, locker: locker, clock: clock}
}

func (h *ChangeVehicleStatusCommandHandler) Handle(ctx context.Context, cmd ChangeVehicleStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	from, err := v.ChangeStatus(cmd.Status())
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Update(ctx, v); err != nil {
		return err
	}

	now := h.clock.Now()
	journal := uow.Journal()
	if err = recordAudit(journal, audit.VehicleEntity, v.ID(), audit.ActionVehicleStatus,
		statusChange(from, v.Status()), cmd.Actor(), audit.UpdateEntry, now); err != nil {
		return err
	}
	if err = recordActivity(journal, audit.VehicleStatus,
		fmt.Sprintf("Vehicle %s (%s) is now %s.", v.ID(), v.LicensePlate(), v.Status()), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ChangeDriverStatusCommandHandler moves a driver between fleet statuses.
// ON_TRIP must name an existing trip.
type ChangeDriverStatusCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.EntityLocker
	clock      clockwork.Clock
}

func NewChangeDriverStatusCommandHandler(
	uowFactory UoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{uowFactory: uowFactory, locker: locker, clock: clock}
}

func (h *ChangeDriverStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDriverStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if cmd.TripID() != nil {
		if _, err = uow.TripRepository().Get(ctx, *cmd.TripID()); err != nil {
			return err
		}
	}

	from, err := d.ChangeStatus(cmd.Status(), cmd.TripID())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, d); err != nil {
		return err
	}

	now := h.clock.Now()
	journal := uow.Journal()
	if err = recordAudit(journal, audit.DriverEntity, d.ID(), audit.ActionDriverStatus,
		statusChange(from, d.Status()), cmd.Actor(), audit.UpdateEntry, now); err != nil {
		return err
	}
	if err = recordActivity(journal, audit.DriverStatus,
		fmt.Sprintf("Driver %s is now %s.", d.Name(), d.Status()), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

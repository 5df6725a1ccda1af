package commands

import (
	"context"
	"fmt"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// CreateTripCommandHandler creates trips in status PENDING and stage REQUESTED.
//
// Side effects on success: one "New Trip Created" audit entry and one
// trip_created activity. A referenced driver or vehicle must exist.
type CreateTripCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.EntityLocker
	clock      clockwork.Clock
}

func NewCreateTripCommandHandler(
	uowFactory UoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) CreateTripCommandHandler {
	return CreateTripCommandHandler{uowFactory: uowFactory, locker: locker, clock: clock}
}

func (h *CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	t, err := trip.NewTrip(cmd.TripID(), cmd.Details(), now)
	if err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, cmd.TripID())
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

	if err = ensureReferences(ctx, uow, t.DriverID(), t.VehicleID()); err != nil {
		return err
	}

	if err = uow.TripRepository().Add(ctx, t); err != nil {
		return err
	}

	journal := uow.Journal()
	if err = recordTripAudit(journal, t, audit.ActionTripCreated,
		fmt.Sprintf("Trip %s created.", tripLabel(t)), cmd.Actor(), audit.ActionEntry, now); err != nil {
		return err
	}
	if err = recordActivity(journal, audit.TripCreated,
		fmt.Sprintf("New trip %s created.", tripLabel(t)), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureReferences checks that the given driver and vehicle exist.
func ensureReferences(ctx context.Context, uow UoW, driverID, vehicleID *kernel.UUID) error {
	if driverID != nil {
		if _, err := uow.DriverRepository().Get(ctx, *driverID); err != nil {
			return err
		}
	}
	if vehicleID != nil {
		if _, err := uow.VehicleRepository().Get(ctx, *vehicleID); err != nil {
			return err
		}
	}
	return nil
}

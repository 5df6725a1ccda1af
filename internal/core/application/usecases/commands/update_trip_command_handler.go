package commands

import (
	"context"
	"fmt"
	"strings"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// UpdateTripCommandHandler applies trip patches. It writes one "Trip Updated"
// audit entry per call and no activity.
type UpdateTripCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.EntityLocker
	clock      clockwork.Clock
}

func NewUpdateTripCommandHandler(
	uowFactory UoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) UpdateTripCommandHandler {
	return UpdateTripCommandHandler{uowFactory: uowFactory, locker: locker, clock: clock}
}

func (h *UpdateTripCommandHandler) Handle(ctx context.Context, cmd UpdateTripCommand) error {
	if err := cmd.Validate(); err != nil {
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

	tripRepo := uow.TripRepository()
	t, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	if err = ensureReferences(ctx, uow, patch.DriverID, patch.VehicleID); err != nil {
		return err
	}

	now := h.clock.Now()
	changed, err := t.Update(patch, now)
	if err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, t); err != nil {
		return err
	}

	details := fmt.Sprintf("Trip %s updated.", tripLabel(t))
	if len(changed) > 0 {
		details = fmt.Sprintf("Trip %s updated: %s.", tripLabel(t), strings.Join(changed, ", "))
	}
	if err = recordTripAudit(uow.Journal(), t, audit.ActionTripUpdated, details,
		cmd.Actor(), audit.UpdateEntry, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

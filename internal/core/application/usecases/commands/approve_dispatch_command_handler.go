package commands

import (
	"context"
	"fmt"
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// ApproveDispatchCommandHandler moves PENDING trips to ASSIGNED and clears their
// SLA breach flag. Approving any other status fails with errs.ErrTransitionIsInvalid
// and records nothing.
//
// Example:
//
//	handler := NewApproveDispatchCommandHandler(uowFactory, locker, clock)
//	cmd, _ := NewApproveDispatchCommand(tripID, "Dispatcher")
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrTransitionIsInvalid) {
//	    // already approved, rejected or further along
//	}
type ApproveDispatchCommandHandler struct {
	mutator tripMutator
}

func NewApproveDispatchCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) ApproveDispatchCommandHandler {
	return ApproveDispatchCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

func (h *ApproveDispatchCommandHandler) Handle(ctx context.Context, cmd ApproveDispatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		if err := t.ApproveDispatch(now); err != nil {
			return false, err
		}
		if err := recordTripAudit(journal, t, audit.ActionTripApproved,
			fmt.Sprintf("Trip %s status set to %s.", t.ID(), t.Status()), cmd.Actor(), audit.ActionEntry, now); err != nil {
			return false, err
		}
		return true, recordActivity(journal, audit.TripApproved,
			fmt.Sprintf("Trip %s approved for dispatch.", tripLabel(t)), now)
	})
}

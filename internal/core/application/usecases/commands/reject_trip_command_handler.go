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

// RejectTripCommandHandler cancels PENDING trips. The stage stays REQUESTED.
type RejectTripCommandHandler struct {
	mutator tripMutator
}

func NewRejectTripCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) RejectTripCommandHandler {
	return RejectTripCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

func (h *RejectTripCommandHandler) Handle(ctx context.Context, cmd RejectTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		if err := t.Reject(now); err != nil {
			return false, err
		}
		if err := recordTripAudit(journal, t, audit.ActionTripRejected,
			fmt.Sprintf("Trip %s status set to %s.", t.ID(), t.Status()), cmd.Actor(), audit.ActionEntry, now); err != nil {
			return false, err
		}
		return true, recordActivity(journal, audit.TripRejected,
			fmt.Sprintf("Trip %s cancelled/rejected.", tripLabel(t)), now)
	})
}

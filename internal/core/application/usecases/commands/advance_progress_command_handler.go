package commands

import (
	"context"
	"fmt"
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// AdvanceProgressCommandHandler advances IN_PROGRESS trips. Nothing is journaled
// unless the trip completes; completion writes a "Trip Completed" audit entry
// by System and a trip_completed activity.
type AdvanceProgressCommandHandler struct {
	mutator tripMutator
}

func NewAdvanceProgressCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) AdvanceProgressCommandHandler {
	return AdvanceProgressCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

// Handle reports whether this call completed the trip.
func (h *AdvanceProgressCommandHandler) Handle(ctx context.Context, cmd AdvanceProgressCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var completed bool
	err := h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		var err error
		completed, err = advanceTrip(t, cmd.Delta(), journal, now)
		return err == nil, err
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

func advanceTrip(t *trip.Trip, delta int, journal ports.Journal, now time.Time) (bool, error) {
	completed, err := t.AdvanceProgress(delta, now)
	if err != nil || !completed {
		return false, err
	}

	if err = recordTripAudit(journal, t, audit.ActionTripCompleted,
		fmt.Sprintf("Progress reached %d%%. Trip %s completed.", t.Progress(), t.ID()),
		kernel.SystemActor, audit.UpdateEntry, now); err != nil {
		return false, err
	}
	if err = recordActivity(journal, audit.TripCompleted,
		fmt.Sprintf("Trip %s completed!", tripLabel(t)), now); err != nil {
		return false, err
	}
	return true, nil
}

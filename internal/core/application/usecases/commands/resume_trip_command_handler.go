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

// ResumeTripCommandHandler returns DELAYED trips to IN_PROGRESS.
type ResumeTripCommandHandler struct {
	mutator tripMutator
}

func NewResumeTripCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) ResumeTripCommandHandler {
	return ResumeTripCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

func (h *ResumeTripCommandHandler) Handle(ctx context.Context, cmd ResumeTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		from := t.Status()
		if err := t.Resume(now); err != nil {
			return false, err
		}
		if err := recordTripAudit(journal, t, audit.ActionTripResumed,
			statusChange(from, t.Status()), cmd.Actor(), audit.UpdateEntry, now); err != nil {
			return false, err
		}
		return true, recordActivity(journal, audit.TripResumed,
			fmt.Sprintf("Trip %s resumed.", tripLabel(t)), now)
	})
}

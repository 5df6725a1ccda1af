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

// StartTripCommandHandler moves ASSIGNED trips to IN_PROGRESS and stamps the
// actual start time. From then on the SLA monitor advances the trip's progress.
type StartTripCommandHandler struct {
	mutator tripMutator
}

func NewStartTripCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) StartTripCommandHandler {
	return StartTripCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

func (h *StartTripCommandHandler) Handle(ctx context.Context, cmd StartTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		from := t.Status()
		if err := t.Start(now); err != nil {
			return false, err
		}
		if err := recordTripAudit(journal, t, audit.ActionTripStarted,
			statusChange(from, t.Status()), cmd.Actor(), audit.UpdateEntry, now); err != nil {
			return false, err
		}
		return true, recordActivity(journal, audit.TripStarted,
			fmt.Sprintf("Trip %s started by %s.", tripLabel(t), cmd.Actor()), now)
	})
}

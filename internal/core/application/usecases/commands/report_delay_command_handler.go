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

// ReportDelayCommandHandler moves IN_PROGRESS trips to DELAYED. Delayed trips
// keep their stage and do not advance until resumed.
type ReportDelayCommandHandler struct {
	mutator tripMutator
}

func NewReportDelayCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) ReportDelayCommandHandler {
	return ReportDelayCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

func (h *ReportDelayCommandHandler) Handle(ctx context.Context, cmd ReportDelayCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		from := t.Status()
		if err := t.ReportDelay(now); err != nil {
			return false, err
		}

		details := statusChange(from, t.Status())
		message := fmt.Sprintf("Trip %s is delayed.", tripLabel(t))
		if cmd.Reason() != "" {
			details = fmt.Sprintf("%s: %s", details, cmd.Reason())
			message = fmt.Sprintf("Trip %s is delayed due to %s.", tripLabel(t), cmd.Reason())
		}

		if err := recordTripAudit(journal, t, audit.ActionTripDelayed,
			details, cmd.Actor(), audit.UpdateEntry, now); err != nil {
			return false, err
		}
		return true, recordActivity(journal, audit.TripDelay, message, now)
	})
}

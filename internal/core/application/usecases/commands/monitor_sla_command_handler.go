package commands

import (
	"context"
	"log/slog"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/services"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// MonitorSLAResult counts what one sweep did.
type MonitorSLAResult struct {
	Evaluated int
	Advanced  int
	Completed int
	Breached  int
	Failed    int
}

// MonitorSLACommandHandler runs the SLA monitor sweep.
//
// The sweep iterates a snapshot of trip ids. Each trip is handled under its own
// lock in its own unit of work, so a sweep interleaves with user actions on
// other trips but never races one on the same trip. A failure on one trip is
// logged and counted, and the sweep moves on.
type MonitorSLACommandHandler struct {
	mutator   tripMutator
	trips     ports.TripReader
	policy    services.SLAPolicy
	increment services.ProgressIncrement
	logger    *slog.Logger
}

func NewMonitorSLACommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
	trips ports.TripReader,
	policy services.SLAPolicy,
	increment services.ProgressIncrement,
	logger *slog.Logger,
) MonitorSLACommandHandler {
	if increment == nil {
		increment = services.RandomProgressIncrement
	}
	return MonitorSLACommandHandler{
		mutator:   newTripMutator(uowFactory, locker, clock),
		trips:     trips,
		policy:    policy,
		increment: increment,
		logger:    logger,
	}
}

// Handle runs one sweep. It returns early only when ctx is done.
func (h *MonitorSLACommandHandler) Handle(ctx context.Context, cmd MonitorSLACommand) (MonitorSLAResult, error) {
	var result MonitorSLAResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	snapshot, err := h.trips.List(ctx, ports.TripFilter{})
	if err != nil {
		return result, err
	}

	for _, t := range snapshot {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		result.Evaluated++
		out, tickErr := h.tick(ctx, t.ID())
		if tickErr != nil {
			result.Failed++
			h.logger.ErrorContext(ctx, "sla monitor failed for trip",
				"tripId", t.ID().String(),
				"error", tickErr,
			)
			continue
		}

		if out.advanced {
			result.Advanced++
		}
		if out.completed {
			result.Completed++
		}
		if out.breached {
			result.Breached++
		}
	}

	return result, nil
}

type tickOutcome struct {
	advanced  bool
	completed bool
	breached  bool
}

func (h *MonitorSLACommandHandler) tick(ctx context.Context, tripID kernel.UUID) (tickOutcome, error) {
	var out tickOutcome

	err := h.mutator.mutate(ctx, tripID, func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		out = tickOutcome{}

		if t.Status() == trip.InProgress && t.Progress() < 100 {
			completed, err := advanceTrip(t, h.increment(), journal, now)
			if err != nil {
				return false, err
			}
			out.advanced = true
			out.completed = completed
		}

		breached, err := flagBreach(h.policy, t, journal, now)
		if err != nil {
			return false, err
		}
		out.breached = breached

		return out.advanced || out.breached, nil
	})
	if err != nil {
		return tickOutcome{}, err
	}
	return out, nil
}

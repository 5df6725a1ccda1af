package commands

import (
	"context"
	"fmt"
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/services"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// CheckSLACommandHandler flags a trip whose monitored stage ran past its SLA.
//
// The flag is one-shot: a flagged trip is skipped until ApproveDispatch clears
// it, so repeated checks never duplicate the "SLA Breached" entry.
type CheckSLACommandHandler struct {
	mutator tripMutator
	policy  services.SLAPolicy
}

func NewCheckSLACommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
	policy services.SLAPolicy,
) CheckSLACommandHandler {
	return CheckSLACommandHandler{mutator: newTripMutator(uowFactory, locker, clock), policy: policy}
}

// Handle reports whether this call flagged a new breach.
func (h *CheckSLACommandHandler) Handle(ctx context.Context, cmd CheckSLACommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var breached bool
	err := h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		var err error
		breached, err = flagBreach(h.policy, t, journal, now)
		return breached, err
	})
	if err != nil {
		return false, err
	}
	return breached, nil
}

func flagBreach(policy services.SLAPolicy, t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
	stage, breached := policy.IsBreached(t, now)
	if !breached || !t.FlagSLABreach(now) {
		return false, nil
	}

	if err := recordTripAudit(journal, t, audit.ActionSLABreached,
		fmt.Sprintf("Stage '%s' SLA exceeded.", stage.Label()),
		kernel.SystemActor, audit.InfoEntry, now); err != nil {
		return false, err
	}
	if err := recordActivity(journal, audit.SLABreach,
		fmt.Sprintf("SLA BREACHED for Trip %s!", tripLabel(t)), now); err != nil {
		return false, err
	}
	return true, nil
}

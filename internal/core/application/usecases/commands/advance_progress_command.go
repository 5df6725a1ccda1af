package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/pkg/guard"
)

var ErrAdvanceProgressCommandIsNotConstructed = errors.New(
	"AdvanceProgressCommand must be created via NewAdvanceProgressCommand constructor",
)

// AdvanceProgressCommand adds delta percentage points to an IN_PROGRESS trip.
// It is issued by the SLA monitor, so it carries no actor: completion is
// attributed to the system.
type AdvanceProgressCommand struct {
	tripID kernel.UUID
	delta  int

	guard guard.ConstructorGuard
}

func NewAdvanceProgressCommand(tripID kernel.UUID, delta int) (AdvanceProgressCommand, error) {
	var deltaErr error
	if delta < 0 {
		deltaErr = errs.NewValueIsOutOfRangeError("delta", delta, 0, 100)
	}
	if err := errors.Join(tripID.Validate(), deltaErr); err != nil {
		return AdvanceProgressCommand{}, err
	}

	return AdvanceProgressCommand{tripID: tripID, delta: delta, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceProgressCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceProgressCommandIsNotConstructed)
}

func (c AdvanceProgressCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c AdvanceProgressCommand) Delta() int {
	return c.delta
}

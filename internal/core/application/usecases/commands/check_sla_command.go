package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/guard"
)

var ErrCheckSLACommandIsNotConstructed = errors.New(
	"CheckSLACommand must be created via NewCheckSLACommand constructor",
)

// CheckSLACommand evaluates the SLA of a single trip against the current time.
type CheckSLACommand struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckSLACommand(tripID kernel.UUID) (CheckSLACommand, error) {
	if err := tripID.Validate(); err != nil {
		return CheckSLACommand{}, err
	}
	return CheckSLACommand{tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (c CheckSLACommand) Validate() error {
	return c.guard.Validate(ErrCheckSLACommandIsNotConstructed)
}

func (c CheckSLACommand) TripID() kernel.UUID {
	return c.tripID
}

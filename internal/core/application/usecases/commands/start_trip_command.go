package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/guard"
)

var ErrStartTripCommandIsNotConstructed = errors.New(
	"StartTripCommand must be created via NewStartTripCommand constructor",
)

// StartTripCommand starts an ASSIGNED trip.
type StartTripCommand struct {
	tripRef

	guard guard.ConstructorGuard
}

func NewStartTripCommand(tripID kernel.UUID, actor kernel.Actor) (StartTripCommand, error) {
	ref, err := newTripRef(tripID, actor)
	if err != nil {
		return StartTripCommand{}, err
	}
	return StartTripCommand{tripRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c StartTripCommand) Validate() error {
	return c.guard.Validate(ErrStartTripCommandIsNotConstructed)
}

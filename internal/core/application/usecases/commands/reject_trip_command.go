package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/guard"
)

var ErrRejectTripCommandIsNotConstructed = errors.New(
	"RejectTripCommand must be created via NewRejectTripCommand constructor",
)

// RejectTripCommand cancels a PENDING trip.
type RejectTripCommand struct {
	tripRef

	guard guard.ConstructorGuard
}

func NewRejectTripCommand(tripID kernel.UUID, actor kernel.Actor) (RejectTripCommand, error) {
	ref, err := newTripRef(tripID, actor)
	if err != nil {
		return RejectTripCommand{}, err
	}
	return RejectTripCommand{tripRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectTripCommand) Validate() error {
	return c.guard.Validate(ErrRejectTripCommandIsNotConstructed)
}

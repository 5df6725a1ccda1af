package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/guard"
)

var ErrResumeTripCommandIsNotConstructed = errors.New(
	"ResumeTripCommand must be created via NewResumeTripCommand constructor",
)

// ResumeTripCommand returns a DELAYED trip to IN_PROGRESS.
type ResumeTripCommand struct {
	tripRef

	guard guard.ConstructorGuard
}

func NewResumeTripCommand(tripID kernel.UUID, actor kernel.Actor) (ResumeTripCommand, error) {
	ref, err := newTripRef(tripID, actor)
	if err != nil {
		return ResumeTripCommand{}, err
	}
	return ResumeTripCommand{tripRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c ResumeTripCommand) Validate() error {
	return c.guard.Validate(ErrResumeTripCommandIsNotConstructed)
}

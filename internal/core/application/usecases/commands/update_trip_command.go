package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/pkg/guard"
)

var ErrUpdateTripCommandIsNotConstructed = errors.New(
	"UpdateTripCommand must be created via NewUpdateTripCommand constructor",
)

// UpdateTripCommand merges a patch into an existing trip. It never changes
// status or stage.
type UpdateTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	patch  trip.Patch
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

func NewUpdateTripCommand(tripID kernel.UUID, patch trip.Patch, actor kernel.Actor) (UpdateTripCommand, error) {
	cmd := UpdateTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	var patchErr error
	if patch.IsEmpty() {
		patchErr = trip.ErrPatchIsEmpty
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setActor(actor),
		patchErr,
	); err != nil {
		return UpdateTripCommand{}, err
	}
	cmd.patch = patch

	return cmd, nil
}

func (c UpdateTripCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTripCommandIsNotConstructed)
}

func (c UpdateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c UpdateTripCommand) Patch() trip.Patch {
	return c.patch
}

func (c UpdateTripCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *UpdateTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *UpdateTripCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

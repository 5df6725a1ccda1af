package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
)

// tripRef is the target and the attribution shared by the trip action commands.
type tripRef struct {
	tripID kernel.UUID
	actor  kernel.Actor
}

func newTripRef(tripID kernel.UUID, actor kernel.Actor) (tripRef, error) {
	if err := errors.Join(tripID.Validate(), actor.Validate()); err != nil {
		return tripRef{}, err
	}
	return tripRef{tripID: tripID, actor: actor}, nil
}

func (r tripRef) TripID() kernel.UUID {
	return r.tripID
}

func (r tripRef) Actor() kernel.Actor {
	return r.actor
}

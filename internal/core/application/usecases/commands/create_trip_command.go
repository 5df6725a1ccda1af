package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/pkg/guard"
)

var ErrCreateTripCommandIsNotConstructed = errors.New(
	"CreateTripCommand must be created via NewCreateTripCommand constructor",
)

// CreateTripCommand represents a request to register a new trip.
// Trip fields are validated by the Trip aggregate when the command is handled,
// so a command with a missing name fails without any side effect.
//
// Example:
//
//	tripID := kernel.NewUUID()
//	cmd, err := NewCreateTripCommand(tripID, trip.Details{
//	    Name:          "Morning run",
//	    Origin:        "Depot A",
//	    Destination:   "Store 12",
//	    ScheduledTime: time.Now().Add(time.Hour),
//	}, "Dispatcher")
//	if err != nil {
//	    return fmt.Errorf("invalid trip request: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create trip: %w", err)
//	}
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID  kernel.UUID
	details trip.Details
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateTripCommand validates the id and the actor.
func NewCreateTripCommand(tripID kernel.UUID, details trip.Details, actor kernel.Actor) (CreateTripCommand, error) {
	cmd := CreateTripCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setActor(actor),
	); err != nil {
		return CreateTripCommand{}, err
	}

	return cmd, nil
}

func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

func (c CreateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c CreateTripCommand) Details() trip.Details {
	return c.details
}

func (c CreateTripCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *CreateTripCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

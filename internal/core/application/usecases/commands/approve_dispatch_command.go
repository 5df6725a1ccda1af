package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/guard"
)

var ErrApproveDispatchCommandIsNotConstructed = errors.New(
	"ApproveDispatchCommand must be created via NewApproveDispatchCommand constructor",
)

// ApproveDispatchCommand approves a PENDING trip for dispatch.
type ApproveDispatchCommand struct {
	tripRef

	guard guard.ConstructorGuard
}

func NewApproveDispatchCommand(tripID kernel.UUID, actor kernel.Actor) (ApproveDispatchCommand, error) {
	ref, err := newTripRef(tripID, actor)
	if err != nil {
		return ApproveDispatchCommand{}, err
	}
	return ApproveDispatchCommand{tripRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c ApproveDispatchCommand) Validate() error {
	return c.guard.Validate(ErrApproveDispatchCommandIsNotConstructed)
}

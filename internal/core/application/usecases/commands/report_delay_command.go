package commands

import (
	"errors"
	"strings"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/guard"
)

var ErrReportDelayCommandIsNotConstructed = errors.New(
	"ReportDelayCommand must be created via NewReportDelayCommand constructor",
)

// ReportDelayCommand marks an IN_PROGRESS trip as DELAYED. The reason is
// optional free text copied into the audit entry and the activity.
type ReportDelayCommand struct {
	tripRef
	reason string

	guard guard.ConstructorGuard
}

func NewReportDelayCommand(tripID kernel.UUID, reason string, actor kernel.Actor) (ReportDelayCommand, error) {
	ref, err := newTripRef(tripID, actor)
	if err != nil {
		return ReportDelayCommand{}, err
	}
	return ReportDelayCommand{
		tripRef: ref,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReportDelayCommand) Validate() error {
	return c.guard.Validate(ErrReportDelayCommandIsNotConstructed)
}

func (c ReportDelayCommand) Reason() string {
	return c.reason
}

package commands

import (
	"errors"

	"tripflow/internal/pkg/guard"
)

// MonitorSLACommand triggers one sweep of the SLA monitor over every trip:
// running trips advance by one progress increment, and trips waiting in
// REQUESTED or ASSIGNED past their stage SLA are flagged as breached.
//
// Example:
//
//	cmd := NewMonitorSLACommand()
//	handler := NewMonitorSLACommandHandler(uowFactory, locker, clock, trips, policy, increment, logger)
//
//	// Run periodically, see jobs.SLAMonitorJob
//	result, err := handler.Handle(ctx, cmd)
type MonitorSLACommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrMonitorSLACommandIsNotConstructed = errors.New(
		"MonitorSLACommand must be created via NewMonitorSLACommand constructor",
	)
)

// NewMonitorSLACommand creates a command to run one monitor sweep.
// This is a parameterless command that processes all trips.
func NewMonitorSLACommand() MonitorSLACommand {
	command := MonitorSLACommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrMonitorSLACommandIsNotConstructed if validation fails.
func (c *MonitorSLACommand) Validate() error {
	return c.guard.Validate(ErrMonitorSLACommandIsNotConstructed)
}

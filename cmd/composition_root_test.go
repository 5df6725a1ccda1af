package cmd_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tripflow/cmd"
	"tripflow/internal/adapters/out/memory"
	"tripflow/internal/core/application/usecases/commands"
	"tripflow/internal/core/application/usecases/queries"
	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/workflow"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An end-to-end pass over the wired root: a trip left in ASSIGNED past its
// one hour SLA is flagged by the monitor exactly once.
func TestCompositionRoot_MonitorFlagsAssignedTripOnce(t *testing.T) {
	// Arrange
	ctx := context.Background()
	t0 := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(t0)
	events := memory.NewEventLog()
	root := cmd.NewCompositionRoot(
		cmd.Config{SLAMonitorInterval: time.Second},
		events,
		workflow.DefaultDefinition(),
		clock,
		slog.New(slog.DiscardHandler),
	)
	defer root.Close()

	id := kernel.NewUUID()
	create, err := commands.NewCreateTripCommand(id, trip.Details{
		Name:          "Night freight",
		Origin:        "Depot A",
		Destination:   "Port B",
		ScheduledTime: t0,
	}, "Dispatcher")
	require.NoError(t, err)
	createHandler := root.CreateCreateTripCommandHandler()
	require.NoError(t, createHandler.Handle(ctx, create))

	approve, err := commands.NewApproveDispatchCommand(id, "Dispatcher")
	require.NoError(t, err)
	approveHandler := root.CreateApproveDispatchCommandHandler()
	require.NoError(t, approveHandler.Handle(ctx, approve))

	monitor := root.CreateMonitorSLACommandHandler()

	// Act
	clock.Advance(time.Hour + time.Second)
	_, err = monitor.Handle(ctx, commands.NewMonitorSLACommand())
	require.NoError(t, err)
	_, err = monitor.Handle(ctx, commands.NewMonitorSLACommand())
	require.NoError(t, err)

	// Assert
	query, err := queries.NewGetTripQuery(id)
	require.NoError(t, err)
	view, err := root.CreateGetTripQueryHandler().Handle(ctx, query)
	require.NoError(t, err)
	assert.True(t, view.SLABreached)

	entries, err := events.ListAudit(ctx, audit.TripEntity, id)
	require.NoError(t, err)
	var breaches int
	for _, e := range entries {
		if e.Action() == audit.ActionSLABreached {
			breaches++
		}
	}
	assert.Equal(t, 1, breaches)
}

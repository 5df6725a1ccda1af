package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tripflow/internal/adapters/out/memory"
	"tripflow/internal/core/application/usecases/commands"
	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

const dispatcher kernel.Actor = "Dispatcher"

type tripUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (a tripUoWFactory) Create() commands.TripUoW { return a.f.Create() }

type fleetUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (a fleetUoWFactory) Create() commands.FleetUoW { return a.f.Create() }

type uowFactory struct{ f *memory.UnitOfWorkFactory }

func (a uowFactory) Create() commands.UoW { return a.f.Create() }

// engine wires the command handlers over the in-memory adapters and a fake clock.
type engine struct {
	store  *memory.Store
	events *memory.EventLog
	locker *memory.KeyedLocker
	clock  *clockwork.FakeClock
	uow    *memory.UnitOfWorkFactory
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	return newEngineWithEvents(t, nil)
}

// newEngineWithEvents lets a test replace the event store. nil means a memory.EventLog.
func newEngineWithEvents(t *testing.T, sink ports.EventStore) *engine {
	t.Helper()
	e := &engine{
		store:  memory.NewStore(),
		events: memory.NewEventLog(),
		locker: memory.NewKeyedLocker(),
		clock:  clockwork.NewFakeClockAt(t0),
	}
	if sink == nil {
		sink = e.events
	}
	e.uow = memory.NewUnitOfWorkFactory(e.store, sink, nil, slog.New(slog.DiscardHandler))
	return e
}

func (e *engine) trips() commands.TripUoWFactory { return tripUoWFactory{e.uow} }
func (e *engine) fleet() commands.FleetUoWFactory { return fleetUoWFactory{e.uow} }
func (e *engine) all() commands.UoWFactory { return uowFactory{e.uow} }

func (e *engine) createTrip(t *testing.T, name string) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateTripCommand(id, trip.Details{
		Name:          name,
		Origin:        "Depot A",
		Destination:   "Store 12",
		ScheduledTime: t0.Add(time.Hour),
	}, dispatcher)
	require.NoError(t, err)

	handler := commands.NewCreateTripCommandHandler(e.all(), e.locker, e.clock)
	require.NoError(t, handler.Handle(t.Context(), cmd))
	return id
}

func (e *engine) approve(t *testing.T, id kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewApproveDispatchCommand(id, dispatcher)
	require.NoError(t, err)
	handler := commands.NewApproveDispatchCommandHandler(e.trips(), e.locker, e.clock)
	return handler.Handle(t.Context(), cmd)
}

func (e *engine) start(t *testing.T, id kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewStartTripCommand(id, "Driver")
	require.NoError(t, err)
	handler := commands.NewStartTripCommandHandler(e.trips(), e.locker, e.clock)
	return handler.Handle(t.Context(), cmd)
}

func (e *engine) trip(t *testing.T, id kernel.UUID) *trip.Trip {
	t.Helper()
	got, err := memory.NewTripReader(e.store).Get(context.Background(), id)
	require.NoError(t, err)
	return got
}

func (e *engine) audit(t *testing.T, id kernel.UUID) []audit.Entry {
	t.Helper()
	entries, err := e.events.ListAudit(context.Background(), audit.TripEntity, id)
	require.NoError(t, err)
	return entries
}

func (e *engine) activity(t *testing.T) []audit.Activity {
	t.Helper()
	activities, err := e.events.ListActivity(context.Background(), 0)
	require.NoError(t, err)
	return activities
}

func actions(entries []audit.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Action())
	}
	return out
}

package memory

import (
	"context"
	"errors"
	"log/slog"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/core/ports"
	"tripflow/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit, Rollback and the repositories
// of a unit of work that was not begun or is already finished.
var ErrNoActiveTransaction = errors.New("unit of work has no active transaction")

// UnitOfWorkFactory creates units of work over one Store, appending their
// journals to events and publishing them after commit.
//
// Example:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store, memory.NewEventLog(), bus, logger)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.TripRepository().Add(ctx, t); err != nil {
//	    return err
//	}
//	uow.Journal().RecordAudit(entry)
//	return uow.Commit(ctx)
type UnitOfWorkFactory struct {
	store     *Store
	events    ports.EventStore
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory wires the factory. publisher may be nil.
func NewUnitOfWorkFactory(
	store *Store,
	events ports.EventStore,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		events:    events,
		publisher: publisher,
		logger:    logger.With("component", "unit-of-work"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		events:    f.events,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork stages aggregate copies and events until Commit.
//
// Commit order is fixed: the journal is appended to the event store as one
// batch, then the staged state is written to the store, then events are
// published. Readers never observe rows whose audit entries were not
// persisted. When the append fails the staged rows are discarded and an
// errs.InconsistentStateError is returned; nothing is published.
//
// A UnitOfWork is used by a single goroutine. Concurrent writers to the same
// entity must be serialised by the caller (see KeyedLocker).
type UnitOfWork struct {
	store     *Store
	events    ports.EventStore
	publisher ports.EventPublisher
	logger    *slog.Logger

	active     bool
	changes    *changes
	entries    []audit.Entry
	activities []audit.Activity
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return nil
	}
	u.active = true
	u.changes = newChanges()
	u.entries = nil
	u.activities = nil
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if err := u.ensureActive(); err != nil {
		return err
	}
	u.active = false

	if u.changes.isEmpty() && len(u.entries) == 0 && len(u.activities) == 0 {
		return nil
	}

	if len(u.entries) > 0 || len(u.activities) > 0 {
		if err := u.events.Append(ctx, u.entries, u.activities); err != nil {
			u.changes = newChanges()

			inconsistent := errs.NewInconsistentStateError(u.operation(), true, err)
			u.logger.ErrorContext(ctx, "audit append failed, state change rolled back",
				"operation", inconsistent.Operation,
				"entries", len(u.entries),
				"activities", len(u.activities),
				"error", err,
			)
			return inconsistent
		}
	}

	u.store.apply(u.changes)
	u.publish()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if err := u.ensureActive(); err != nil {
		return err
	}
	u.active = false
	u.changes = newChanges()
	u.entries = nil
	u.activities = nil
	return nil
}

func (u *UnitOfWork) TripRepository() ports.TripRepository {
	return tripRepository{stagedRepository[*trip.Trip]{
		uow:    u,
		name:   "trip",
		staged: func() *changeSet[*trip.Trip] { return u.changes.trips },
		table:  func() *table[*trip.Trip] { return u.store.trips },
	}}
}

func (u *UnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehicleRepository{stagedRepository[*vehicle.Vehicle]{
		uow:    u,
		name:   "vehicle",
		staged: func() *changeSet[*vehicle.Vehicle] { return u.changes.vehicles },
		table:  func() *table[*vehicle.Vehicle] { return u.store.vehicles },
	}}
}

func (u *UnitOfWork) DriverRepository() ports.DriverRepository {
	return driverRepository{stagedRepository[*driver.Driver]{
		uow:    u,
		name:   "driver",
		staged: func() *changeSet[*driver.Driver] { return u.changes.drivers },
		table:  func() *table[*driver.Driver] { return u.store.drivers },
	}}
}

func (u *UnitOfWork) Journal() ports.Journal {
	return u
}

func (u *UnitOfWork) RecordAudit(entry audit.Entry) {
	u.entries = append(u.entries, entry)
}

func (u *UnitOfWork) RecordActivity(activity audit.Activity) {
	u.activities = append(u.activities, activity)
}

func (u *UnitOfWork) ensureActive() error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	return nil
}

// operation names the unit of work in error reports by its first audit action.
func (u *UnitOfWork) operation() string {
	if len(u.entries) > 0 {
		return u.entries[0].Action()
	}
	if len(u.activities) > 0 {
		return string(u.activities[0].Type())
	}
	return "commit"
}

func (u *UnitOfWork) publish() {
	if u.publisher == nil {
		return
	}

	events := make([]audit.Event, 0, len(u.entries)+len(u.activities))
	for _, e := range u.entries {
		events = append(events, e)
	}
	for _, a := range u.activities {
		events = append(events, a)
	}
	if len(events) > 0 {
		u.publisher.Publish(events...)
	}
}

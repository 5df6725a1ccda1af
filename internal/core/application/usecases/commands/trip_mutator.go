package commands

import (
	"context"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// tripMutation changes t and journals its events. It reports whether anything
// changed; an unchanged trip is not written back.
type tripMutation func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error)

// tripMutator is the common path of every single-trip command: take the trip's
// lock, read the trip inside a fresh unit of work, apply the mutation with one
// clock reading, stage the result and commit.
type tripMutator struct {
	uowFactory TripUoWFactory
	locker     ports.EntityLocker
	clock      clockwork.Clock
}

func newTripMutator(uowFactory TripUoWFactory, locker ports.EntityLocker, clock clockwork.Clock) tripMutator {
	return tripMutator{uowFactory: uowFactory, locker: locker, clock: clock}
}

func (m tripMutator) mutate(ctx context.Context, tripID kernel.UUID, mutation tripMutation) error {
	unlock, err := m.locker.Lock(ctx, tripID)
	if err != nil {
		return err
	}
	defer unlock()

	uow := m.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tripRepo := uow.TripRepository()
	t, err := tripRepo.Get(ctx, tripID)
	if err != nil {
		return err
	}

	changed, err := mutation(t, uow.Journal(), m.clock.Now())
	if err != nil || !changed {
		return err
	}

	if err = tripRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

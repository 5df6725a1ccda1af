// Package ports defines the contracts between the trip engine core and its adapters:
// repositories over the entity store, the audit sink, the event publisher and
// the per-entity lock.
package ports

import (
	"context"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
)

// TripRepository is the write-side view of trips inside a unit of work.
// Reads return copies; changes become visible to others only on Commit.
type TripRepository interface {
	// Add stages a new trip. The id must not exist yet.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update stages changes to an existing trip.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get returns the staged version of the trip if any, else the committed one.
	// Returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)
}

// TripFilter narrows ListTrips. The zero value matches every trip.
type TripFilter struct {
	// Search is matched case-insensitively against id, name, origin and destination.
	Search string

	// Status keeps only trips in this status when set.
	Status *trip.Status

	// SLABreachedOnly keeps only trips with the breach flag set.
	SLABreachedOnly bool
}

// Matches applies the filter to a single trip.
func (f TripFilter) Matches(t *trip.Trip) bool {
	if f.Status != nil && t.Status() != *f.Status {
		return false
	}
	if f.SLABreachedOnly && !t.SLABreached() {
		return false
	}
	return t.Matches(f.Search)
}

// TripReader serves snapshot reads of committed trips.
type TripReader interface {
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// List returns matching trips in creation order.
	List(ctx context.Context, filter TripFilter) ([]*trip.Trip, error)
}

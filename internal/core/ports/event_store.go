package ports

import (
	"context"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
)

// EventStore is the append-only sink of audit entries and activities.
//
// Append must be atomic: either every entry and activity of the call is stored,
// or none is and an error is returned.
type EventStore interface {
	Append(ctx context.Context, entries []audit.Entry, activities []audit.Activity) error
}

// EventReader serves the two projections of the log.
type EventReader interface {
	// ListAudit returns the entries about one entity in insertion order.
	ListAudit(ctx context.Context, kind audit.EntityKind, id kernel.UUID) ([]audit.Entry, error)

	// ListActivity returns the feed newest first. limit <= 0 returns everything.
	ListActivity(ctx context.Context, limit int) ([]audit.Activity, error)
}

// EventLog is a store that can also be read.
type EventLog interface {
	EventStore
	EventReader
}

// Journal collects the events of one unit of work. They are appended to the
// EventStore on Commit, after the state change.
type Journal interface {
	RecordAudit(entry audit.Entry)
	RecordActivity(activity audit.Activity)
}

// EventPublisher delivers committed events to subscribers. It must not block.
type EventPublisher interface {
	Publish(events ...audit.Event)
}

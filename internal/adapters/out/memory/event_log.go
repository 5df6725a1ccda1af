package memory

import (
	"context"
	"sync"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/ports"
)

// EventLog is the in-memory audit sink. Entries keep insertion order; the
// activity feed is read newest first.
type EventLog struct {
	mu         sync.RWMutex
	entries    []audit.Entry
	activities []audit.Activity
}

var _ ports.EventLog = (*EventLog)(nil)

func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append stores all entries and activities in one critical section.
func (l *EventLog) Append(ctx context.Context, entries []audit.Entry, activities []audit.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entries...)
	l.activities = append(l.activities, activities...)
	return nil
}

func (l *EventLog) ListAudit(_ context.Context, kind audit.EntityKind, id kernel.UUID) ([]audit.Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]audit.Entry, 0)
	for _, e := range l.entries {
		if e.IsAbout(kind, id) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *EventLog) ListActivity(_ context.Context, limit int) ([]audit.Activity, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.activities)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]audit.Activity, 0, n)
	for i := len(l.activities) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.activities[i])
	}
	return out, nil
}

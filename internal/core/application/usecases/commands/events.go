package commands

import (
	"fmt"
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"
)

// recordAudit builds an audit entry and adds it to the journal.
func recordAudit(
	journal ports.Journal,
	kind audit.EntityKind,
	entityID kernel.UUID,
	action, details string,
	actor kernel.Actor,
	entryType audit.EntryType,
	now time.Time,
) error {
	entry, err := audit.NewEntry(kind, entityID, action, details, actor, entryType, now)
	if err != nil {
		return err
	}
	journal.RecordAudit(entry)
	return nil
}

// recordActivity builds an activity and adds it to the journal.
func recordActivity(journal ports.Journal, activityType audit.ActivityType, message string, now time.Time) error {
	activity, err := audit.NewActivity(activityType, message, now)
	if err != nil {
		return err
	}
	journal.RecordActivity(activity)
	return nil
}

func recordTripAudit(
	journal ports.Journal,
	t *trip.Trip,
	action, details string,
	actor kernel.Actor,
	entryType audit.EntryType,
	now time.Time,
) error {
	return recordAudit(journal, audit.TripEntity, t.ID(), action, details, actor, entryType, now)
}

func statusChange(from, to fmt.Stringer) string {
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}

func tripLabel(t *trip.Trip) string {
	return fmt.Sprintf("%s (%s)", t.ID(), t.Name())
}

package audit

import (
	"errors"
	"fmt"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"
)

// EntityKind names the aggregate an audit entry is about.
type EntityKind string

const (
	TripEntity    EntityKind = "trip"
	VehicleEntity EntityKind = "vehicle"
	DriverEntity  EntityKind = "driver"
)

// ParseEntityKind accepts "trip", "vehicle" or "driver".
func ParseEntityKind(s string) (EntityKind, error) {
	kind := EntityKind(s)
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

func (k EntityKind) Validate() error {
	switch k {
	case TripEntity, VehicleEntity, DriverEntity:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("entity kind", fmt.Errorf("%q is not a valid entity kind", string(k)))
}

// EntryType tags an audit entry for rendering.
type EntryType string

const (
	UpdateEntry EntryType = "update"
	ActionEntry EntryType = "action"
	InfoEntry   EntryType = "info"
)

func (t EntryType) Validate() error {
	switch t {
	case UpdateEntry, ActionEntry, InfoEntry:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("entry type", fmt.Errorf("%q is not a valid entry type", string(t)))
}

// Audit action labels.
const (
	ActionTripCreated      = "New Trip Created"
	ActionTripUpdated      = "Trip Updated"
	ActionTripApproved     = "Trip Approved"
	ActionTripRejected     = "Trip Rejected"
	ActionTripStarted      = "Trip Started"
	ActionTripDelayed      = "Trip Delayed"
	ActionTripResumed      = "Trip Resumed"
	ActionTripCompleted    = "Trip Completed"
	ActionSLABreached      = "SLA Breached"
	ActionDocumentUploaded = "Document Uploaded"
	ActionDocumentRemoved  = "Document Removed"
	ActionVehicleCreated   = "Vehicle Registered"
	ActionDriverCreated    = "Driver Registered"
	ActionVehicleStatus    = "Vehicle status updated"
	ActionDriverStatus     = "Driver status updated"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one line of the audit log about a single entity.
type Entry struct {
	id         kernel.UUID
	entityKind EntityKind
	entityID   kernel.UUID
	action     string
	details    string
	actor      kernel.Actor
	timestamp  time.Time
	entryType  EntryType
}

// NewEntry creates an audit entry with a fresh id.
func NewEntry(
	kind EntityKind,
	entityID kernel.UUID,
	action, details string,
	actor kernel.Actor,
	entryType EntryType,
	at time.Time,
) (Entry, error) {
	return RestoreEntry(kernel.NewUUID(), kind, entityID, action, details, actor, entryType, at)
}

// RestoreEntry rebuilds a persisted entry, keeping its id.
func RestoreEntry(
	id kernel.UUID,
	kind EntityKind,
	entityID kernel.UUID,
	action, details string,
	actor kernel.Actor,
	entryType EntryType,
	at time.Time,
) (Entry, error) {
	var actionErr error
	if action == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}

	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		entityID.Validate(),
		actionErr,
		actor.Validate(),
		entryType.Validate(),
	); err != nil {
		return Entry{}, err
	}

	return Entry{
		id:         id,
		entityKind: kind,
		entityID:   entityID,
		action:     action,
		details:    details,
		actor:      actor,
		timestamp:  at,
		entryType:  entryType,
	}, nil
}

func (e Entry) Validate() error {
	if err := e.id.Validate(); err != nil {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e Entry) ID() kernel.UUID {
	return e.id
}

func (e Entry) EntityKind() EntityKind {
	return e.entityKind
}

func (e Entry) EntityID() kernel.UUID {
	return e.entityID
}

func (e Entry) Action() string {
	return e.action
}

func (e Entry) Details() string {
	return e.details
}

func (e Entry) Actor() kernel.Actor {
	return e.actor
}

func (e Entry) Timestamp() time.Time {
	return e.timestamp
}

func (e Entry) Type() EntryType {
	return e.entryType
}

// IsAbout reports whether the entry concerns the given entity.
func (e Entry) IsAbout(kind EntityKind, id kernel.UUID) bool {
	return e.entityKind == kind && e.entityID.IsEqual(id)
}

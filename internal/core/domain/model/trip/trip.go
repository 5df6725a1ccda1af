package trip

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/workflow"
	"tripflow/internal/pkg/errs"
)

const maxProgress = 100

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not created through
	// the NewTrip factory method.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")

	// ErrPatchIsEmpty is returned by Update when no field is provided.
	ErrPatchIsEmpty = errs.NewValueIsRequiredError("at least one field to update")
)

// Details carries the caller-supplied fields of a new trip.
// Name, Origin, Destination and ScheduledTime are required.
type Details struct {
	Name                string
	Origin              string
	Destination         string
	ScheduledTime       time.Time
	EstimatedCompletion *time.Time
	Notes               string
	DriverID            *kernel.UUID
	VehicleID           *kernel.UUID
}

// Patch lists the fields UpdateTrip may change. Nil fields are left untouched.
type Patch struct {
	Name                *string
	Origin              *string
	Destination         *string
	ScheduledTime       *time.Time
	EstimatedCompletion *time.Time
	Notes               *string
	DriverID            *kernel.UUID
	VehicleID           *kernel.UUID
}

// IsEmpty reports whether the patch sets no field at all.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Origin == nil && p.Destination == nil && p.ScheduledTime == nil &&
		p.EstimatedCompletion == nil && p.Notes == nil && p.DriverID == nil && p.VehicleID == nil
}

// Trip is the aggregate root of a delivery trip moving through the workflow.
//
// Trip follows these invariants:
//   - stage == StageOf(status, stage before the last transition)
//   - status == Completed if and only if progress == 100
//   - progress never decreases
//   - driver and vehicle change only while Pending
//   - nothing changes once the trip is Completed or Cancelled, except its documents
//
// Every mutation sets lastUpdate to the supplied clock reading; createdAt is immutable.
type Trip struct {
	id          kernel.UUID
	name        string
	origin      string
	destination string
	notes       string

	scheduledTime       time.Time
	estimatedCompletion *time.Time
	actualStartTime     *time.Time
	actualEndTime       *time.Time

	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	status      Status
	stage       workflow.Stage
	progress    int
	slaBreached bool

	createdAt  time.Time
	lastUpdate time.Time

	documents []Document

	isConstructed bool
}

// NewTrip creates a trip in status Pending and stage Requested.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - details: caller fields; name, origin, destination and scheduled time are required
//   - now: creation instant, used for both createdAt and lastUpdate
//
// Returns every validation failure joined into one error; the trip is nil in that case.
//
// Example:
//
//	t, err := trip.NewTrip(kernel.NewUUID(), trip.Details{
//	    Name:          "Morning run",
//	    Origin:        "Depot A",
//	    Destination:   "Store 12",
//	    ScheduledTime: clock.Now().Add(time.Hour),
//	}, clock.Now())
func NewTrip(id kernel.UUID, details Details, now time.Time) (*Trip, error) {
	t := &Trip{
		status:        Pending,
		stage:         workflow.Requested,
		notes:         details.Notes,
		createdAt:     now,
		lastUpdate:    now,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(details.Name),
		t.setOrigin(details.Origin),
		t.setDestination(details.Destination),
		t.setScheduledTime(details.ScheduledTime),
		t.setDriverID(details.DriverID),
		t.setVehicleID(details.VehicleID),
	); err != nil {
		return nil, err
	}
	t.estimatedCompletion = cloneTime(details.EstimatedCompletion)

	return t, nil
}

// Validate ensures the Trip instance was properly constructed through NewTrip.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

func (t *Trip) ID() kernel.UUID {
	return t.id
}

func (t *Trip) Name() string {
	return t.name
}

func (t *Trip) Origin() string {
	return t.origin
}

func (t *Trip) Destination() string {
	return t.destination
}

func (t *Trip) Notes() string {
	return t.notes
}

func (t *Trip) ScheduledTime() time.Time {
	return t.scheduledTime
}

// EstimatedCompletion returns nil when no estimate was given.
func (t *Trip) EstimatedCompletion() *time.Time {
	return cloneTime(t.estimatedCompletion)
}

// ActualStartTime is set when the trip starts.
func (t *Trip) ActualStartTime() *time.Time {
	return cloneTime(t.actualStartTime)
}

// ActualEndTime is set when the trip completes.
func (t *Trip) ActualEndTime() *time.Time {
	return cloneTime(t.actualEndTime)
}

func (t *Trip) DriverID() *kernel.UUID {
	return cloneUUID(t.driverID)
}

func (t *Trip) VehicleID() *kernel.UUID {
	return cloneUUID(t.vehicleID)
}

func (t *Trip) Status() Status {
	return t.status
}

func (t *Trip) Stage() workflow.Stage {
	return t.stage
}

func (t *Trip) Progress() int {
	return t.progress
}

func (t *Trip) SLABreached() bool {
	return t.slaBreached
}

func (t *Trip) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Trip) LastUpdate() time.Time {
	return t.lastUpdate
}

// Documents returns a copy of the attached documents in attachment order.
func (t *Trip) Documents() []Document {
	return slices.Clone(t.documents)
}

// Update merges the non-nil fields of patch into the trip and returns the names
// of the fields whose value actually changed. Status and stage are never touched.
//
// Business rules:
//   - terminal trips cannot be updated (TransitionIsInvalidError)
//   - a different driver or vehicle is only accepted while Pending (TransitionIsInvalidError)
//   - blanking name, origin or destination, or zeroing the schedule, is a validation error
//
// All checks run before any field is written, so a failed update leaves the trip unchanged.
func (t *Trip) Update(patch Patch, now time.Time) ([]string, error) {
	if patch.IsEmpty() {
		return nil, ErrPatchIsEmpty
	}
	if t.status.IsTerminal() {
		return nil, errs.NewTransitionIsInvalidError("update trip", t.status.String())
	}

	next := t.Clone()
	var changed []string

	if patch.Name != nil && *patch.Name != t.name {
		if err := next.setName(*patch.Name); err != nil {
			return nil, err
		}
		changed = append(changed, "name")
	}
	if patch.Origin != nil && *patch.Origin != t.origin {
		if err := next.setOrigin(*patch.Origin); err != nil {
			return nil, err
		}
		changed = append(changed, "origin")
	}
	if patch.Destination != nil && *patch.Destination != t.destination {
		if err := next.setDestination(*patch.Destination); err != nil {
			return nil, err
		}
		changed = append(changed, "destination")
	}
	if patch.ScheduledTime != nil && !patch.ScheduledTime.Equal(t.scheduledTime) {
		if err := next.setScheduledTime(*patch.ScheduledTime); err != nil {
			return nil, err
		}
		changed = append(changed, "scheduledTime")
	}
	if patch.EstimatedCompletion != nil {
		next.estimatedCompletion = cloneTime(patch.EstimatedCompletion)
		changed = append(changed, "estimatedCompletion")
	}
	if patch.Notes != nil && *patch.Notes != t.notes {
		next.notes = *patch.Notes
		changed = append(changed, "notes")
	}
	if patch.DriverID != nil && !sameUUID(t.driverID, patch.DriverID) {
		if t.status != Pending {
			return nil, errs.NewTransitionIsInvalidError("change driver", t.status.String())
		}
		if err := next.setDriverID(patch.DriverID); err != nil {
			return nil, err
		}
		changed = append(changed, "driverId")
	}
	if patch.VehicleID != nil && !sameUUID(t.vehicleID, patch.VehicleID) {
		if t.status != Pending {
			return nil, errs.NewTransitionIsInvalidError("change vehicle", t.status.String())
		}
		if err := next.setVehicleID(patch.VehicleID); err != nil {
			return nil, err
		}
		changed = append(changed, "vehicleId")
	}

	next.lastUpdate = now
	*t = *next
	return changed, nil
}

// ApproveDispatch moves a Pending trip to Assigned and clears the SLA breach flag.
func (t *Trip) ApproveDispatch(now time.Time) error {
	if err := t.apply(t.status.Approve, now); err != nil {
		return err
	}
	t.slaBreached = false
	return nil
}

// Reject cancels a Pending trip. The stage stays at Requested.
func (t *Trip) Reject(now time.Time) error {
	return t.apply(t.status.Reject, now)
}

// Start moves an Assigned trip to InProgress and records the actual start time.
func (t *Trip) Start(now time.Time) error {
	if err := t.apply(t.status.Start, now); err != nil {
		return err
	}
	t.actualStartTime = &now
	return nil
}

// ReportDelay marks an InProgress trip as Delayed.
func (t *Trip) ReportDelay(now time.Time) error {
	return t.apply(t.status.Delay, now)
}

// Resume returns a Delayed trip to InProgress.
func (t *Trip) Resume(now time.Time) error {
	return t.apply(t.status.Resume, now)
}

// AdvanceProgress adds delta (>= 0) to the progress of an InProgress trip, capping
// at 100. Reaching 100 completes the trip and records the actual end time.
// lastUpdate is set even when delta is 0.
//
// Returns completed == true only on the call that completed the trip.
func (t *Trip) AdvanceProgress(delta int, now time.Time) (bool, error) {
	if delta < 0 {
		return false, errs.NewValueIsOutOfRangeError("delta", delta, 0, maxProgress)
	}
	if t.status != InProgress {
		return false, errs.NewTransitionIsInvalidError("advance progress", t.status.String())
	}

	t.progress = min(maxProgress, t.progress+delta)
	t.lastUpdate = now
	if t.progress < maxProgress {
		return false, nil
	}

	if err := t.apply(t.status.Complete, now); err != nil {
		return false, err
	}
	t.actualEndTime = &now
	return true, nil
}

// FlagSLABreach sets the breach flag. It returns false, changing nothing, when the
// flag is already set or the trip is terminal; deciding whether the deadline has
// passed is up to the caller.
func (t *Trip) FlagSLABreach(now time.Time) bool {
	if t.slaBreached || t.status.IsTerminal() {
		return false
	}
	t.slaBreached = true
	t.lastUpdate = now
	return true
}

// AttachDocument appends doc. Document ids are unique within a trip.
// Documents may be attached in every status, including terminal ones.
func (t *Trip) AttachDocument(doc Document, now time.Time) error {
	if doc.id == "" {
		return errs.NewValueIsRequiredError("document id")
	}
	if t.documentIndex(doc.id) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("document id",
			fmt.Errorf("document %q is already attached", doc.id))
	}

	t.documents = append(t.documents, doc)
	t.lastUpdate = now
	return nil
}

// RemoveDocument removes the document with the given id and returns it.
func (t *Trip) RemoveDocument(documentID string, now time.Time) (Document, error) {
	i := t.documentIndex(documentID)
	if i < 0 {
		return Document{}, errs.NewObjectNotFoundError("document", documentID)
	}

	doc := t.documents[i]
	t.documents = slices.Delete(t.documents, i, i+1)
	t.lastUpdate = now
	return doc, nil
}

// Matches reports whether query is contained, case-insensitively, in the id,
// name, origin or destination of the trip. An empty query matches everything.
func (t *Trip) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range []string{t.id.String(), t.name, t.origin, t.destination} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy that shares no mutable state with t.
func (t *Trip) Clone() *Trip {
	c := *t
	c.estimatedCompletion = cloneTime(t.estimatedCompletion)
	c.actualStartTime = cloneTime(t.actualStartTime)
	c.actualEndTime = cloneTime(t.actualEndTime)
	c.driverID = cloneUUID(t.driverID)
	c.vehicleID = cloneUUID(t.vehicleID)
	c.documents = slices.Clone(t.documents)
	return &c
}

func (t *Trip) apply(transition func() (Status, error), now time.Time) error {
	next, err := transition()
	if err != nil {
		return err
	}

	t.stage = StageOf(next, t.stage)
	t.status = next
	t.lastUpdate = now
	return nil
}

func (t *Trip) documentIndex(id string) int {
	return slices.IndexFunc(t.documents, func(d Document) bool { return d.id == id })
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Trip) setOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	t.origin = origin
	return nil
}

func (t *Trip) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	t.destination = destination
	return nil
}

func (t *Trip) setScheduledTime(scheduled time.Time) error {
	if scheduled.IsZero() {
		return errs.NewValueIsRequiredError("scheduledTime")
	}
	t.scheduledTime = scheduled
	return nil
}

func (t *Trip) setDriverID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	t.driverID = cloneUUID(id)
	return nil
}

func (t *Trip) setVehicleID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	t.vehicleID = cloneUUID(id)
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func sameUUID(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsEqual(*b)
}

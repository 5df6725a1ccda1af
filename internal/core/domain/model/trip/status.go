package trip

import (
	"fmt"

	"tripflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──> InProgress ──> Completed
//	          │                   │    ^
//	          v                   v    │
//	      Cancelled              Delayed
//
// Delayed is a side-status of InProgress set when a delay is reported and
// left again when the trip resumes. Cancelled and Completed are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a trip awaiting dispatch approval.
	Pending

	// Assigned indicates the dispatch was approved and the trip can start.
	Assigned

	// InProgress indicates the trip is under way and accumulating progress.
	InProgress

	// Completed is reached when progress hits 100. Terminal.
	Completed

	// Cancelled is reached when a pending trip is rejected. Terminal.
	Cancelled

	// Delayed marks an in-progress trip with a reported delay.
	Delayed
)

var statusNames = map[Status]string{
	Pending:    "PENDING",
	Assigned:   "ASSIGNED",
	InProgress: "IN_PROGRESS",
	Completed:  "COMPLETED",
	Cancelled:  "CANCELLED",
	Delayed:    "DELAYED",
}

// ParseStatus maps a wire name such as "IN_PROGRESS" to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Approve transitions Pending -> Assigned.
func (s Status) Approve() (Status, error) {
	return s.transition("approve dispatch", Assigned, Pending)
}

// Reject transitions Pending -> Cancelled.
func (s Status) Reject() (Status, error) {
	return s.transition("reject", Cancelled, Pending)
}

// Start transitions Assigned -> InProgress.
func (s Status) Start() (Status, error) {
	return s.transition("start", InProgress, Assigned)
}

// Delay transitions InProgress -> Delayed.
func (s Status) Delay() (Status, error) {
	return s.transition("report delay", Delayed, InProgress)
}

// Resume transitions Delayed -> InProgress.
func (s Status) Resume() (Status, error) {
	return s.transition("resume", InProgress, Delayed)
}

// Complete transitions InProgress -> Completed.
func (s Status) Complete() (Status, error) {
	return s.transition("complete", Completed, InProgress)
}

func (s Status) transition(action string, to Status, from Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewTransitionIsInvalidError(action, s.String())
	}
	return to, nil
}

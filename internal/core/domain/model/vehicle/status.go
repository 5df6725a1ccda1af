package vehicle

import (
	"fmt"

	"tripflow/internal/pkg/errs"
)

// Status of a vehicle in the fleet.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Available
	InUse
	Maintenance
	Offline
)

var statusNames = map[Status]string{
	Available:   "AVAILABLE",
	InUse:       "IN_USE",
	Maintenance: "MAINTENANCE",
	Offline:     "OFFLINE",
}

func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid vehicle status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

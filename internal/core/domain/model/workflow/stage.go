package workflow

import (
	"fmt"

	"tripflow/internal/pkg/errs"
)

// Stage is one of the four checkpoints a trip passes through.
//
//	Requested ──> Assigned ──> InProgress ──> Completed
type Stage int

const (
	// UnknownStage catches uninitialized values.
	UnknownStage Stage = iota
	Requested
	Assigned
	InProgress
	Completed
)

var stageNames = map[Stage]string{
	Requested:  "REQUESTED",
	Assigned:   "ASSIGNED",
	InProgress: "IN_PROGRESS",
	Completed:  "COMPLETED",
}

// ParseStage maps the wire name (e.g. "IN_PROGRESS") back to a Stage.
func ParseStage(s string) (Stage, error) {
	for stage, name := range stageNames {
		if name == s {
			return stage, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a valid stage", s))
}

func (s Stage) Validate() error {
	if _, ok := stageNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

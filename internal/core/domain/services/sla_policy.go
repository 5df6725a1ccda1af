package services

import (
	"time"

	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/workflow"
)

// SLAPolicy decides whether a trip has exceeded the SLA of the stage it is waiting in.
//
// Only two situations are monitored:
//   - Pending trips in stage Requested
//   - Assigned trips in stage Assigned
//
// The deadline is createdAt plus the stage SLA. Running, delayed and terminal
// trips are never flagged.
//
// Example:
//
//	policy := services.NewSLAPolicy(workflow.DefaultDefinition())
//	if stage, breached := policy.IsBreached(t, clock.Now()); breached {
//	    t.FlagSLABreach(clock.Now())
//	    // record "Stage '<stage.Label()>' SLA exceeded."
//	}
type SLAPolicy struct {
	definition workflow.Definition
}

func NewSLAPolicy(definition workflow.Definition) SLAPolicy {
	return SLAPolicy{definition: definition}
}

// Monitored returns the stage whose SLA currently applies to t.
func (p SLAPolicy) Monitored(t *trip.Trip) (workflow.StageConfig, bool) {
	switch {
	case t.Status() == trip.Pending && t.Stage() == workflow.Requested,
		t.Status() == trip.Assigned && t.Stage() == workflow.Assigned:
		return p.definition.Find(t.Stage())
	default:
		return workflow.StageConfig{}, false
	}
}

// DueDate returns createdAt plus the SLA of the monitored stage.
func (p SLAPolicy) DueDate(t *trip.Trip) (time.Time, bool) {
	stage, ok := p.Monitored(t)
	if !ok {
		return time.Time{}, false
	}
	return t.CreatedAt().Add(stage.SLA()), true
}

// IsBreached reports a new breach: now is strictly after the due date and the
// trip is not flagged yet.
func (p SLAPolicy) IsBreached(t *trip.Trip, now time.Time) (workflow.StageConfig, bool) {
	if t.SLABreached() {
		return workflow.StageConfig{}, false
	}
	stage, ok := p.Monitored(t)
	if !ok {
		return workflow.StageConfig{}, false
	}
	if !now.After(t.CreatedAt().Add(stage.SLA())) {
		return workflow.StageConfig{}, false
	}
	return stage, true
}

// Package trip provides the Trip aggregate and the state machine that governs its
// lifecycle through the delivery workflow.
//
// The package includes:
//   - Trip: the aggregate root holding route, assignment, progress and SLA state
//   - Status: the trip status state machine
//   - StageOf: the pure projection from status to workflow stage
//   - Document: opaque metadata of files attached to a trip
//
// Key business rules:
//   - Trips start PENDING in stage REQUESTED with progress 0
//   - Stage is always derived from status; CANCELLED keeps the stage it was cancelled from
//   - Driver and vehicle may only change while the trip is PENDING
//   - Progress never decreases and reaching 100 completes the trip
//   - CANCELLED and COMPLETED are terminal: no further transition or update is accepted
//   - The SLA breach flag is set at most once per stage and only cleared by an approval
package trip

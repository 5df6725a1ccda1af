// Package workflow defines the fixed sequence of trip stages and their SLA budgets.
//
// The engine only reads a stage's identity and SLA duration for deadline math;
// labels and roles are exposed to callers for rendering stage trackers and for
// their own role gating. A Definition can be replaced at startup from a YAML file
// (see LoadDefinition) but always lists REQUESTED, ASSIGNED, IN_PROGRESS and
// COMPLETED in that order.
package workflow

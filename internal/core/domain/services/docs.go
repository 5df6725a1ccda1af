// Package services contains domain services that need more than one aggregate or
// a collaborator outside the model:
//   - SLAPolicy: deadline math over the workflow definition
//   - ProgressIncrement: the step a running trip advances by on each monitor tick
package services

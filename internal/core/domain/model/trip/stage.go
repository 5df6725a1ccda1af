package trip

import "tripflow/internal/core/domain/model/workflow"

// StageOf projects a status onto its workflow stage. It is total: Cancelled
// returns previous (the stage the trip was cancelled from) and any invalid
// status yields workflow.UnknownStage.
func StageOf(status Status, previous workflow.Stage) workflow.Stage {
	switch status {
	case Pending:
		return workflow.Requested
	case Assigned:
		return workflow.Assigned
	case InProgress, Delayed:
		return workflow.InProgress
	case Completed:
		return workflow.Completed
	case Cancelled:
		return previous
	case Unknown:
		return workflow.UnknownStage
	}
	return workflow.UnknownStage
}

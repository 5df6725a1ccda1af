package queries

import (
	"context"
	"errors"
	"time"

	"tripflow/internal/core/domain/model/workflow"
	"tripflow/internal/pkg/guard"
)

var ErrGetWorkflowQueryIsNotConstructed = errors.New(
	"GetWorkflowQuery must be created via NewGetWorkflowQuery constructor",
)

type GetWorkflowQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWorkflowQuery() GetWorkflowQuery {
	return GetWorkflowQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWorkflowQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowQueryIsNotConstructed)
}

// StageResponse describes one workflow stage. Roles are advisory.
type StageResponse struct {
	ID    string
	Label string
	SLA   time.Duration
	Roles []string
}

// GetWorkflowQueryHandler returns the active workflow definition, stages in order.
type GetWorkflowQueryHandler struct {
	definition workflow.Definition
}

func NewGetWorkflowQueryHandler(definition workflow.Definition) GetWorkflowQueryHandler {
	return GetWorkflowQueryHandler{definition: definition}
}

func (h GetWorkflowQueryHandler) Handle(_ context.Context, query GetWorkflowQuery) ([]StageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stages := h.definition.Stages()
	out := make([]StageResponse, 0, len(stages))
	for _, s := range stages {
		roles := make([]string, 0, len(s.Roles()))
		for _, r := range s.Roles() {
			roles = append(roles, string(r))
		}
		out = append(out, StageResponse{
			ID:    s.Stage().String(),
			Label: s.Label(),
			SLA:   s.SLA(),
			Roles: roles,
		})
	}
	return out, nil
}

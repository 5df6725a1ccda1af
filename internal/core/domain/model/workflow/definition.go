package workflow

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"tripflow/internal/pkg/errs"
	"tripflow/internal/pkg/guard"
)

var (
	ErrDefinitionIsNotConstructed = errors.New("Definition must be created via NewDefinition or DefaultDefinition")
	ErrStageOrderIsInvalid        = errors.New("stages must be REQUESTED, ASSIGNED, IN_PROGRESS, COMPLETED in this order")
)

// orderedStages is the only stage sequence a definition may describe.
var orderedStages = []Stage{Requested, Assigned, InProgress, Completed}

// StageConfig describes one stage: its label, its SLA budget measured from trip
// creation, and the roles expected to act on it.
type StageConfig struct {
	stage Stage
	label string
	sla   time.Duration
	roles []Role
}

// NewStageConfig validates and builds a StageConfig.
func NewStageConfig(stage Stage, label string, sla time.Duration, roles ...Role) (StageConfig, error) {
	var problems []error
	if err := stage.Validate(); err != nil {
		problems = append(problems, err)
	}
	if label == "" {
		problems = append(problems, errs.NewValueIsRequiredError("label"))
	}
	if sla < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("sla", fmt.Errorf("%s is negative", sla)))
	}
	if err := errors.Join(problems...); err != nil {
		return StageConfig{}, err
	}

	return StageConfig{stage: stage, label: label, sla: sla, roles: slices.Clone(roles)}, nil
}

func (c StageConfig) Stage() Stage { return c.stage }
func (c StageConfig) Label() string { return c.label }
func (c StageConfig) SLA() time.Duration { return c.sla }
func (c StageConfig) Roles() []Role { return slices.Clone(c.roles) }
func (c StageConfig) AllowsRole(r Role) bool { return slices.Contains(c.roles, r) }

// Definition is the immutable, ordered list of workflow stages.
type Definition struct {
	stages []StageConfig
	guard  guard.ConstructorGuard
}

// DefaultDefinition returns the built-in workflow:
//
//	REQUESTED    2h   Dispatcher, Admin
//	ASSIGNED     1h   Dispatcher
//	IN_PROGRESS  24h  Driver, Operations Team
//	COMPLETED    0h   Dispatcher, Fleet Manager
func DefaultDefinition() Definition {
	return Definition{
		stages: []StageConfig{
			{stage: Requested, label: "Requested", sla: 2 * time.Hour, roles: []Role{Dispatcher, Admin}},
			{stage: Assigned, label: "Assigned", sla: time.Hour, roles: []Role{Dispatcher}},
			{stage: InProgress, label: "In Progress", sla: 24 * time.Hour, roles: []Role{Driver, OperationsTeam}},
			{stage: Completed, label: "Completed", sla: 0, roles: []Role{Dispatcher, FleetManager}},
		},
		guard: guard.NewConstructorGuard(),
	}
}

// NewDefinition accepts exactly the four stages in workflow order.
func NewDefinition(stages []StageConfig) (Definition, error) {
	if len(stages) != len(orderedStages) {
		return Definition{}, errs.NewValueIsInvalidErrorWithCause("stages",
			fmt.Errorf("%w: got %d stages", ErrStageOrderIsInvalid, len(stages)))
	}
	for i, cfg := range stages {
		if cfg.stage != orderedStages[i] {
			return Definition{}, errs.NewValueIsInvalidErrorWithCause("stages",
				fmt.Errorf("%w: position %d holds %s", ErrStageOrderIsInvalid, i, cfg.stage))
		}
	}

	return Definition{stages: slices.Clone(stages), guard: guard.NewConstructorGuard()}, nil
}

func (d Definition) Validate() error {
	return d.guard.Validate(ErrDefinitionIsNotConstructed)
}

// Stages returns a copy of the stages in workflow order.
func (d Definition) Stages() []StageConfig {
	return slices.Clone(d.stages)
}

// Find returns the configuration of stage.
func (d Definition) Find(stage Stage) (StageConfig, bool) {
	for _, cfg := range d.stages {
		if cfg.stage == stage {
			return cfg, true
		}
	}
	return StageConfig{}, false
}

// Index returns the zero-based position of stage, or -1.
func (d Definition) Index(stage Stage) int {
	return slices.IndexFunc(d.stages, func(cfg StageConfig) bool { return cfg.stage == stage })
}

package workflow

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tripflow/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// definitionFile is the YAML layout accepted by LoadDefinition:
//
//	stages:
//	  - id: REQUESTED
//	    label: Requested
//	    slaHours: 2
//	    roles: [Dispatcher, Admin]
type definitionFile struct {
	Stages []stageEntry `yaml:"stages"`
}

type stageEntry struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	SLAHours float64  `yaml:"slaHours"`
	Roles    []string `yaml:"roles"`
}

// LoadDefinition decodes a workflow definition from YAML. Unknown keys are rejected.
func LoadDefinition(r io.Reader) (Definition, error) {
	var file definitionFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return Definition{}, errs.NewValueIsInvalidErrorWithCause("workflow definition", err)
	}

	configs := make([]StageConfig, 0, len(file.Stages))
	var problems []error
	for _, entry := range file.Stages {
		stage, err := ParseStage(entry.ID)
		if err != nil {
			problems = append(problems, err)
			continue
		}

		roles := make([]Role, 0, len(entry.Roles))
		for _, r := range entry.Roles {
			roles = append(roles, Role(r))
		}

		sla := time.Duration(entry.SLAHours * float64(time.Hour))
		cfg, err := NewStageConfig(stage, entry.Label, sla, roles...)
		if err != nil {
			problems = append(problems, fmt.Errorf("stage %s: %w", entry.ID, err))
			continue
		}
		configs = append(configs, cfg)
	}
	if err := errors.Join(problems...); err != nil {
		return Definition{}, err
	}

	return NewDefinition(configs)
}

// LoadDefinitionFile reads path with LoadDefinition.
func LoadDefinitionFile(path string) (Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return Definition{}, fmt.Errorf("open workflow file: %w", err)
	}
	defer f.Close()

	return LoadDefinition(f)
}

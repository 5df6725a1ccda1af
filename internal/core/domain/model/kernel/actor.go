package kernel

import (
	"strings"

	"tripflow/internal/pkg/errs"
)

// SystemActor attributes changes made by the engine itself, e.g. the SLA monitor.
const SystemActor Actor = "System"

// Actor is the user or role a change is attributed to in the audit log.
// It is trusted as given; no permission check is derived from it.
type Actor string

// NewActor trims name and rejects blank values.
func NewActor(name string) (Actor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("actor")
	}
	return Actor(name), nil
}

func (a Actor) String() string {
	return string(a)
}

func (a Actor) Validate() error {
	if strings.TrimSpace(string(a)) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}

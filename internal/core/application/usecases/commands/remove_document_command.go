package commands

import (
	"errors"
	"strings"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/pkg/guard"
)

var ErrRemoveDocumentCommandIsNotConstructed = errors.New(
	"RemoveDocumentCommand must be created via NewRemoveDocumentCommand constructor",
)

// RemoveDocumentCommand detaches a document from a trip by document id.
type RemoveDocumentCommand struct {
	tripRef
	documentID string

	guard guard.ConstructorGuard
}

func NewRemoveDocumentCommand(tripID kernel.UUID, documentID string, actor kernel.Actor) (RemoveDocumentCommand, error) {
	ref, refErr := newTripRef(tripID, actor)

	var docErr error
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		docErr = errs.NewValueIsRequiredError("document id")
	}

	if err := errors.Join(refErr, docErr); err != nil {
		return RemoveDocumentCommand{}, err
	}
	return RemoveDocumentCommand{tripRef: ref, documentID: documentID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveDocumentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDocumentCommandIsNotConstructed)
}

func (c RemoveDocumentCommand) DocumentID() string {
	return c.documentID
}

package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/pkg/guard"
)

var ErrAttachDocumentCommandIsNotConstructed = errors.New(
	"AttachDocumentCommand must be created via NewAttachDocumentCommand constructor",
)

// AttachDocumentCommand appends document metadata to a trip.
type AttachDocumentCommand struct {
	tripRef
	document trip.Document

	guard guard.ConstructorGuard
}

func NewAttachDocumentCommand(tripID kernel.UUID, document trip.Document, actor kernel.Actor) (AttachDocumentCommand, error) {
	ref, refErr := newTripRef(tripID, actor)

	var docErr error
	if document.ID() == "" {
		docErr = errs.NewValueIsRequiredError("document id")
	}

	if err := errors.Join(refErr, docErr); err != nil {
		return AttachDocumentCommand{}, err
	}
	return AttachDocumentCommand{tripRef: ref, document: document, guard: guard.NewConstructorGuard()}, nil
}

func (c AttachDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentCommandIsNotConstructed)
}

func (c AttachDocumentCommand) Document() trip.Document {
	return c.document
}

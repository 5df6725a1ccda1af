package commands

import (
	"context"
	"fmt"
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// AttachDocumentCommandHandler attaches documents in any trip status, terminal
// ones included. It writes a "Document Uploaded" audit entry and no activity.
type AttachDocumentCommandHandler struct {
	mutator tripMutator
}

func NewAttachDocumentCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) AttachDocumentCommandHandler {
	return AttachDocumentCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

func (h *AttachDocumentCommandHandler) Handle(ctx context.Context, cmd AttachDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		doc := cmd.Document()
		if err := t.AttachDocument(doc, now); err != nil {
			return false, err
		}
		return true, recordTripAudit(journal, t, audit.ActionDocumentUploaded,
			fmt.Sprintf("File: %s (%s)", doc.Name(), doc.ID()), cmd.Actor(), audit.ActionEntry, now)
	})
}

// RemoveDocumentCommandHandler removes documents. It writes a "Document Removed"
// audit entry and no activity.
type RemoveDocumentCommandHandler struct {
	mutator tripMutator
}

func NewRemoveDocumentCommandHandler(
	uowFactory TripUoWFactory,
	locker ports.EntityLocker,
	clock clockwork.Clock,
) RemoveDocumentCommandHandler {
	return RemoveDocumentCommandHandler{mutator: newTripMutator(uowFactory, locker, clock)}
}

func (h *RemoveDocumentCommandHandler) Handle(ctx context.Context, cmd RemoveDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.TripID(), func(t *trip.Trip, journal ports.Journal, now time.Time) (bool, error) {
		doc, err := t.RemoveDocument(cmd.DocumentID(), now)
		if err != nil {
			return false, err
		}
		return true, recordTripAudit(journal, t, audit.ActionDocumentRemoved,
			fmt.Sprintf("File: %s (%s)", doc.Name(), doc.ID()), cmd.Actor(), audit.ActionEntry, now)
	})
}

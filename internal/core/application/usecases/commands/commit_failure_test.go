package commands_test

import (
	"context"
	"errors"
	"testing"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// switchableEventStore delegates to the engine's log until failing is set.
// When failFor is set only batches touching that trip fail.
type switchableEventStore struct {
	next    interface{ Append(context.Context, []audit.Entry, []audit.Activity) error }
	failing bool
	failFor kernel.UUID
}

var errSinkDown = errors.New("audit sink unavailable")

func (s *switchableEventStore) Append(ctx context.Context, entries []audit.Entry, activities []audit.Activity) error {
	if s.failing {
		return errSinkDown
	}
	if s.failFor != (kernel.UUID{}) {
		for _, e := range entries {
			if e.IsAbout(audit.TripEntity, s.failFor) {
				return errSinkDown
			}
		}
	}
	return s.next.Append(ctx, entries, activities)
}

func TestApproveDispatchCommandHandler_Handle_AuditFailureRollsBackState(t *testing.T) {
	// Arrange
	sink := &switchableEventStore{}
	e := newEngineWithEvents(t, sink)
	sink.next = e.events
	id := e.createTrip(t, "Morning run")
	sink.failing = true

	// Act
	err := e.approve(t, id)

	// Assert
	require.ErrorIs(t, err, errs.ErrStateIsInconsistent)
	require.ErrorIs(t, err, errSinkDown)

	var inconsistent *errs.InconsistentStateError
	require.ErrorAs(t, err, &inconsistent)
	assert.True(t, inconsistent.RolledBack)
	assert.Equal(t, audit.ActionTripApproved, inconsistent.Operation)

	assert.Equal(t, trip.Pending, e.trip(t, id).Status())
	assert.Len(t, e.audit(t, id), 1)

	sink.failing = false
	require.NoError(t, e.approve(t, id), "the trip is still approvable after the failed attempt")
}

package audit_test

import (
	"testing"
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	tripID := kernel.NewUUID()

	e, err := audit.NewEntry(audit.TripEntity, tripID, audit.ActionTripApproved, "Dispatch approved",
		"Dispatcher", audit.ActionEntry, at)

	require.NoError(t, err)
	require.NoError(t, e.Validate())
	assert.True(t, e.IsAbout(audit.TripEntity, tripID))
	assert.False(t, e.IsAbout(audit.VehicleEntity, tripID))
	assert.Equal(t, audit.ActionTripApproved, e.Action())
	assert.Equal(t, kernel.Actor("Dispatcher"), e.Actor())
	assert.Equal(t, audit.ActionEntry, e.Type())
	assert.Equal(t, at, e.Timestamp())

	var ev audit.Event = e
	assert.True(t, ev.ID().IsEqual(e.ID()))
}

func TestNewEntry_Validation(t *testing.T) {
	_, err := audit.NewEntry("route", kernel.UUID{}, "", "", "", "note", at)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	for _, part := range []string{"entity kind", "UUID must be created", "action", "actor", "entry type"} {
		assert.Contains(t, err.Error(), part)
	}

	var zero audit.Entry
	require.ErrorIs(t, zero.Validate(), audit.ErrEntryIsNotConstructed)
}

func TestParseEntityKind(t *testing.T) {
	kind, err := audit.ParseEntityKind("driver")
	require.NoError(t, err)
	assert.Equal(t, audit.DriverEntity, kind)

	_, err = audit.ParseEntityKind("Trip")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActivity(t *testing.T) {
	a, err := audit.NewActivity(audit.SLABreach, "SLA breached for Morning run", at)
	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.Equal(t, audit.SLABreach, a.Type())
	assert.Equal(t, at, a.Timestamp())

	_, err = audit.NewActivity("", " ", at)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero audit.Activity
	require.ErrorIs(t, zero.Validate(), audit.ErrActivityIsNotConstructed)
}

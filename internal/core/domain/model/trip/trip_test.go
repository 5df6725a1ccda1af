package trip_test

import (
	"testing"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/workflow"
	"tripflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func validDetails() trip.Details {
	return trip.Details{
		Name:          "Morning run",
		Origin:        "Depot A",
		Destination:   "Store 12",
		ScheduledTime: t0.Add(time.Hour),
	}
}

func newTrip(t *testing.T) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(kernel.NewUUID(), validDetails(), t0)
	require.NoError(t, err)
	return tr
}

func inProgressTrip(t *testing.T) *trip.Trip {
	t.Helper()
	tr := newTrip(t)
	require.NoError(t, tr.ApproveDispatch(t0))
	require.NoError(t, tr.Start(t0))
	return tr
}

func strPtr(s string) *string { return &s }

func TestNewTrip(t *testing.T) {
	t.Run("should create pending trip in stage REQUESTED", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()
		details := validDetails()
		details.DriverID = &driverID

		tr, err := trip.NewTrip(id, details, t0)

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.True(t, tr.ID().IsEqual(id))
		assert.Equal(t, trip.Pending, tr.Status())
		assert.Equal(t, workflow.Requested, tr.Stage())
		assert.Equal(t, 0, tr.Progress())
		assert.False(t, tr.SLABreached())
		assert.Equal(t, t0, tr.CreatedAt())
		assert.Equal(t, t0, tr.LastUpdate())
		assert.True(t, tr.DriverID().IsEqual(driverID))
		assert.Nil(t, tr.VehicleID())
		assert.Nil(t, tr.ActualStartTime())
	})

	t.Run("should report every missing required field", func(t *testing.T) {
		tr, err := trip.NewTrip(kernel.NewUUID(), trip.Details{Name: "  "}, t0)

		require.Error(t, err)
		assert.Nil(t, tr)
		assert.True(t, errs.IsValidation(err))
		for _, field := range []string{"name", "origin", "destination", "scheduledTime"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject a zero id", func(t *testing.T) {
		_, err := trip.NewTrip(kernel.UUID{}, validDetails(), t0)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var tr trip.Trip
		require.ErrorIs(t, tr.Validate(), trip.ErrTripIsNotConstructed)
	})
}

func TestTrip_Lifecycle(t *testing.T) {
	tr := newTrip(t)
	require.True(t, tr.FlagSLABreach(t0.Add(3*time.Hour)))

	require.NoError(t, tr.ApproveDispatch(t0.Add(3*time.Hour)))
	assert.Equal(t, trip.Assigned, tr.Status())
	assert.Equal(t, workflow.Assigned, tr.Stage())
	assert.False(t, tr.SLABreached(), "approval clears the breach flag")

	startedAt := t0.Add(4 * time.Hour)
	require.NoError(t, tr.Start(startedAt))
	assert.Equal(t, workflow.InProgress, tr.Stage())
	require.NotNil(t, tr.ActualStartTime())
	assert.Equal(t, startedAt, *tr.ActualStartTime())

	require.NoError(t, tr.ReportDelay(startedAt))
	assert.Equal(t, trip.Delayed, tr.Status())
	assert.Equal(t, workflow.InProgress, tr.Stage())

	_, err := tr.AdvanceProgress(10, startedAt)
	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid, "delayed trips do not advance")

	require.NoError(t, tr.Resume(startedAt))
	assert.Equal(t, trip.InProgress, tr.Status())

	completed, err := tr.AdvanceProgress(60, startedAt)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, 60, tr.Progress())

	endedAt := startedAt.Add(time.Hour)
	completed, err = tr.AdvanceProgress(60, endedAt)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 100, tr.Progress())
	assert.Equal(t, trip.Completed, tr.Status())
	assert.Equal(t, workflow.Completed, tr.Stage())
	require.NotNil(t, tr.ActualEndTime())
	assert.Equal(t, endedAt, *tr.ActualEndTime())
	assert.Equal(t, endedAt, tr.LastUpdate())

	_, err = tr.AdvanceProgress(1, endedAt)
	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	assert.False(t, tr.FlagSLABreach(endedAt))
}

func TestTrip_ApproveThenReject(t *testing.T) {
	tr := newTrip(t)
	require.NoError(t, tr.ApproveDispatch(t0))

	err := tr.Reject(t0.Add(time.Minute))

	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	assert.Equal(t, trip.Assigned, tr.Status())
	assert.Equal(t, t0, tr.LastUpdate(), "failed transitions leave the trip unchanged")
}

func TestTrip_RejectKeepsStage(t *testing.T) {
	tr := newTrip(t)
	require.NoError(t, tr.Reject(t0))

	assert.Equal(t, trip.Cancelled, tr.Status())
	assert.Equal(t, workflow.Requested, tr.Stage())
	require.ErrorIs(t, tr.ApproveDispatch(t0), errs.ErrTransitionIsInvalid)
}

func TestTrip_AdvanceProgress(t *testing.T) {
	t.Run("zero delta still touches lastUpdate", func(t *testing.T) {
		tr := inProgressTrip(t)
		later := t0.Add(time.Minute)

		completed, err := tr.AdvanceProgress(0, later)

		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, later, tr.LastUpdate())
	})

	t.Run("negative delta is rejected", func(t *testing.T) {
		tr := inProgressTrip(t)
		_, err := tr.AdvanceProgress(-1, t0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 0, tr.Progress())
	})

	t.Run("pending trips do not advance", func(t *testing.T) {
		tr := newTrip(t)
		_, err := tr.AdvanceProgress(5, t0)
		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	})
}

func TestTrip_FlagSLABreach(t *testing.T) {
	tr := newTrip(t)

	assert.True(t, tr.FlagSLABreach(t0.Add(3*time.Hour)))
	assert.True(t, tr.SLABreached())
	assert.False(t, tr.FlagSLABreach(t0.Add(4*time.Hour)), "breach is one-shot")
	assert.Equal(t, t0.Add(3*time.Hour), tr.LastUpdate())
}

func TestTrip_Update(t *testing.T) {
	t.Run("should merge provided fields only", func(t *testing.T) {
		tr := newTrip(t)
		vehicleID := kernel.NewUUID()
		later := t0.Add(time.Minute)

		changed, err := tr.Update(trip.Patch{
			Name:      strPtr("Evening run"),
			Notes:     strPtr("fragile"),
			Origin:    strPtr("Depot A"),
			VehicleID: &vehicleID,
		}, later)

		require.NoError(t, err)
		assert.Equal(t, []string{"name", "notes", "vehicleId"}, changed)
		assert.Equal(t, "Evening run", tr.Name())
		assert.Equal(t, "Depot A", tr.Origin())
		assert.Equal(t, "fragile", tr.Notes())
		assert.True(t, tr.VehicleID().IsEqual(vehicleID))
		assert.Equal(t, trip.Pending, tr.Status())
		assert.Equal(t, later, tr.LastUpdate())
	})

	t.Run("should reject blanking a required field without partial writes", func(t *testing.T) {
		tr := newTrip(t)

		_, err := tr.Update(trip.Patch{Notes: strPtr("x"), Destination: strPtr("")}, t0.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Empty(t, tr.Notes())
		assert.Equal(t, t0, tr.LastUpdate())
	})

	t.Run("should reject driver change outside PENDING", func(t *testing.T) {
		tr := newTrip(t)
		require.NoError(t, tr.ApproveDispatch(t0))
		driverID := kernel.NewUUID()

		_, err := tr.Update(trip.Patch{DriverID: &driverID}, t0)

		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
		assert.Nil(t, tr.DriverID())
	})

	t.Run("should allow notes on assigned trips", func(t *testing.T) {
		tr := newTrip(t)
		require.NoError(t, tr.ApproveDispatch(t0))

		_, err := tr.Update(trip.Patch{Notes: strPtr("gate code 1234")}, t0)
		require.NoError(t, err)
	})

	t.Run("should reject updates of terminal trips", func(t *testing.T) {
		tr := newTrip(t)
		require.NoError(t, tr.Reject(t0))

		_, err := tr.Update(trip.Patch{Notes: strPtr("late")}, t0)
		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	})

	t.Run("should reject empty patch", func(t *testing.T) {
		tr := newTrip(t)
		_, err := tr.Update(trip.Patch{}, t0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTrip_Documents(t *testing.T) {
	tr := newTrip(t)
	receipt, err := trip.NewDocument("doc-1", "receipt.pdf", "https://files.example/doc-1", t0)
	require.NoError(t, err)
	photo, err := trip.NewDocument("doc-2", "photo.jpg", "https://files.example/doc-2", t0)
	require.NoError(t, err)

	require.NoError(t, tr.AttachDocument(receipt, t0))
	require.NoError(t, tr.AttachDocument(photo, t0))
	require.ErrorIs(t, tr.AttachDocument(receipt, t0), errs.ErrValueIsInvalid)

	require.NoError(t, tr.Reject(t0))
	later := t0.Add(time.Hour)
	removed, err := tr.RemoveDocument("doc-1", later)
	require.NoError(t, err, "documents stay editable on terminal trips")
	assert.Equal(t, "receipt.pdf", removed.Name())
	assert.Equal(t, later, tr.LastUpdate())

	docs := tr.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-2", docs[0].ID())

	_, err = tr.RemoveDocument("doc-1", later)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = trip.NewDocument(" ", "x", "", t0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTrip_Matches(t *testing.T) {
	tr := newTrip(t)

	assert.True(t, tr.Matches(""))
	assert.True(t, tr.Matches("morning"))
	assert.True(t, tr.Matches("STORE"))
	assert.True(t, tr.Matches(tr.ID().String()[:8]))
	assert.False(t, tr.Matches("airport"))
}

func TestTrip_Clone(t *testing.T) {
	tr := inProgressTrip(t)
	doc, _ := trip.NewDocument("doc-1", "a", "", t0)
	require.NoError(t, tr.AttachDocument(doc, t0))

	c := tr.Clone()
	_, err := c.AdvanceProgress(50, t0)
	require.NoError(t, err)
	_, err = c.RemoveDocument("doc-1", t0)
	require.NoError(t, err)

	assert.Equal(t, 0, tr.Progress())
	assert.Len(t, tr.Documents(), 1)
}

package audit

import (
	"errors"
	"strings"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"
)

// ActivityType tags an activity feed item.
type ActivityType string

const (
	TripCreated   ActivityType = "trip_created"
	TripApproved  ActivityType = "trip_approved"
	TripRejected  ActivityType = "trip_rejected"
	TripStarted   ActivityType = "trip_started"
	TripDelay     ActivityType = "trip_delay"
	TripResumed   ActivityType = "trip_resumed"
	TripCompleted ActivityType = "trip_completed"
	SLABreach     ActivityType = "sla_breach"
	VehicleStatus ActivityType = "vehicle_status"
	DriverStatus  ActivityType = "driver_status"
)

var ErrActivityIsNotConstructed = errors.New("Activity must be created via NewActivity or RestoreActivity")

// Activity is a human-readable feed item. The feed is global and newest first.
type Activity struct {
	id           kernel.UUID
	activityType ActivityType
	message      string
	timestamp    time.Time
}

func NewActivity(activityType ActivityType, message string, at time.Time) (Activity, error) {
	return RestoreActivity(kernel.NewUUID(), activityType, message, at)
}

func RestoreActivity(id kernel.UUID, activityType ActivityType, message string, at time.Time) (Activity, error) {
	var typeErr, messageErr error
	if strings.TrimSpace(string(activityType)) == "" {
		typeErr = errs.NewValueIsRequiredError("activity type")
	}
	if strings.TrimSpace(message) == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(id.Validate(), typeErr, messageErr); err != nil {
		return Activity{}, err
	}

	return Activity{id: id, activityType: activityType, message: message, timestamp: at}, nil
}

func (a Activity) Validate() error {
	if err := a.id.Validate(); err != nil {
		return ErrActivityIsNotConstructed
	}
	return nil
}

func (a Activity) ID() kernel.UUID {
	return a.id
}

func (a Activity) Type() ActivityType {
	return a.activityType
}

func (a Activity) Message() string {
	return a.message
}

func (a Activity) Timestamp() time.Time {
	return a.timestamp
}

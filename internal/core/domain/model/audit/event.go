package audit

import (
	"time"

	"tripflow/internal/core/domain/model/kernel"
)

// Event is an audit entry or an activity, as delivered to subscribers.
type Event interface {
	ID() kernel.UUID
	Timestamp() time.Time
	isEvent()
}

func (e Entry) isEvent()    {}
func (a Activity) isEvent() {}

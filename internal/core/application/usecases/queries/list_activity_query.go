package queries

import (
	"errors"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"
	"tripflow/internal/pkg/guard"
)

// MaxActivityLimit caps one page of the activity feed.
const MaxActivityLimit = 500

var ErrListActivityQueryIsNotConstructed = errors.New(
	"ListActivityQuery must be created via NewListActivityQuery constructor",
)

// ListActivityQuery reads the activity feed newest first. A limit of 0 means
// MaxActivityLimit.
type ListActivityQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewListActivityQuery(limit int) (ListActivityQuery, error) {
	if limit < 0 || limit > MaxActivityLimit {
		return ListActivityQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxActivityLimit)
	}
	if limit == 0 {
		limit = MaxActivityLimit
	}
	return ListActivityQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListActivityQuery) Validate() error {
	return q.guard.Validate(ErrListActivityQueryIsNotConstructed)
}

func (q ListActivityQuery) Limit() int {
	return q.limit
}

// ActivityResponse is the read model of a feed item.
type ActivityResponse struct {
	ID        kernel.UUID
	Type      string
	Message   string
	Timestamp time.Time
}

package ports

import (
	"context"

	"tripflow/internal/core/domain/model/kernel"
)

// EntityLocker serialises operations on one entity id. Waiters are served in
// arrival order; operations on different ids do not wait for each other.
type EntityLocker interface {
	// Lock blocks until the lock on id is held or ctx is done. The returned
	// func releases the lock and is safe to call more than once.
	Lock(ctx context.Context, id kernel.UUID) (unlock func(), err error)
}

package memory

import (
	"context"
	"sync"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/ports"
)

// KeyedLocker is a per-id mutex. Each id gets a one-slot channel; blocked senders
// on a channel are woken in arrival order, which gives FIFO fairness per id.
// Entries are dropped once nobody holds or waits for them.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[kernel.UUID]*keyedLock
}

type keyedLock struct {
	slot chan struct{}
	refs int
}

var _ ports.EntityLocker = (*KeyedLocker)(nil)

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[kernel.UUID]*keyedLock)}
}

func (l *KeyedLocker) Lock(ctx context.Context, id kernel.UUID) (func(), error) {
	kl := l.acquire(id)

	select {
	case kl.slot <- struct{}{}:
	case <-ctx.Done():
		l.release(id, kl)
		return func() {}, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.slot
			l.release(id, kl)
		})
	}, nil
}

func (l *KeyedLocker) acquire(id kernel.UUID) *keyedLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[id]
	if !ok {
		kl = &keyedLock{slot: make(chan struct{}, 1)}
		l.locks[id] = kl
	}
	kl.refs++
	return kl
}

func (l *KeyedLocker) release(id kernel.UUID, kl *keyedLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, id)
	}
}

// held reports how many ids are currently locked or awaited.
func (l *KeyedLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// Package eventbus fans committed audit entries and activities out to in-process
// subscribers such as the server-sent events stream.
package eventbus

import (
	"log/slog"
	"sync"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/ports"
)

// DefaultBuffer is used by Subscribe when a non-positive buffer is requested.
const DefaultBuffer = 64

// Bus is a non-blocking fan-out. A subscriber whose buffer is full misses the
// event; the drop is logged and the publisher never waits.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]chan audit.Event
	nextID uint64
	closed bool
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Bus)(nil)

func New(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[uint64]chan audit.Event),
		logger: logger.With("component", "event-bus"),
	}
}

// Subscribe registers a subscriber and returns its channel together with a func
// that unregisters it and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan audit.Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan audit.Event, buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *Bus) Publish(events ...audit.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		for _, ev := range events {
			select {
			case ch <- ev:
			default:
				b.logger.Warn("subscriber buffer full, event dropped",
					"subscriber", id,
					"eventId", ev.ID().String(),
				)
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscriber channel. Later subscriptions get a closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

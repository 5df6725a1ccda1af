package eventbus_test

import (
	"log/slog"
	"testing"
	"time"

	"tripflow/internal/adapters/out/eventbus"
	"tripflow/internal/core/domain/model/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activity(t *testing.T, msg string) audit.Activity {
	t.Helper()
	a, err := audit.NewActivity(audit.TripCreated, msg, time.Now())
	require.NoError(t, err)
	return a
}

func TestBus_FanOut(t *testing.T) {
	bus := eventbus.New(slog.New(slog.DiscardHandler))
	first, closeFirst := bus.Subscribe(4)
	defer closeFirst()
	second, closeSecond := bus.Subscribe(4)
	defer closeSecond()

	ev := activity(t, "hello")
	bus.Publish(ev)

	for _, ch := range []<-chan audit.Event{first, second} {
		select {
		case got := <-ch:
			assert.True(t, got.ID().IsEqual(ev.ID()))
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := eventbus.New(slog.New(slog.DiscardHandler))
	ch, unsubscribe := bus.Subscribe(1)
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		bus.Publish(activity(t, "one"), activity(t, "two"), activity(t, "three"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	got := <-ch
	assert.Equal(t, "one", got.(audit.Activity).Message())
	assert.Empty(t, ch)
}

func TestBus_UnsubscribeAndClose(t *testing.T) {
	bus := eventbus.New(slog.New(slog.DiscardHandler))
	ch, unsubscribe := bus.Subscribe(0)
	assert.Equal(t, 1, bus.Subscribers())

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, bus.Subscribers())
	_, open := <-ch
	assert.False(t, open)

	other, _ := bus.Subscribe(1)
	bus.Close()
	_, open = <-other
	assert.False(t, open)

	late, _ := bus.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBus_FanOutWithSequence(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	ctx := context.Background()
	a, err := bus.Listen(ctx)
	require.NoError(t, err)
	b, err := bus.Listen(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventProjectsChanged, ProjectID: 7}))
	require.NoError(t, bus.SendEvent(Event{Type: EventMembersChanged, MemberID: 3}))

	for _, ch := range []<-chan Event{a, b} {
		first := receive(t, ch)
		second := receive(t, ch)
		assert.Equal(t, EventProjectsChanged, first.Type)
		assert.Equal(t, 7, first.ProjectID)
		assert.False(t, first.Timestamp.IsZero())
		assert.Equal(t, int64(1), first.SequenceID)
		assert.Equal(t, int64(2), second.SequenceID)
	}
}

func TestBus_ListenerRemovedOnCancel(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("listener channel not closed after cancel")
	}

	// sending after the listener left must not panic
	require.NoError(t, bus.SendEvent(Event{Type: EventProjectsChanged}))
}

func TestBus_SlowListenerDoesNotBlock(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	_, err := bus.Listen(context.Background())
	require.NoError(t, err)

	for range listenerBuffer * 3 {
		require.NoError(t, bus.SendEvent(Event{Type: EventProjectsChanged}))
	}
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	_, ok := <-ch
	assert.False(t, ok)

	assert.ErrorIs(t, bus.SendEvent(Event{Type: EventProjectsChanged}), ErrClosed)
	_, err = bus.Listen(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

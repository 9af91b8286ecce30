package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPublisher returns failWith from every SendEvent
type stubPublisher struct {
	sendAttempts int
	failWith     error
	lastEvent    Event
}

func (m *stubPublisher) SendEvent(event Event) error {
	m.lastEvent = event
	m.sendAttempts++
	return m.failWith
}

func (m *stubPublisher) Listen(ctx context.Context) (<-chan Event, error) { return nil, nil }
func (m *stubPublisher) Close() error                                     { return nil }

func TestPublish_Success(t *testing.T) {
	stub := &stubPublisher{}

	require.NoError(t, Publish(stub, Event{Type: EventProjectsChanged, ProjectID: 1}))
	assert.Equal(t, 1, stub.sendAttempts)
	assert.Equal(t, 1, stub.lastEvent.ProjectID)
}

func TestPublish_FailureIsReturnedWithoutRetry(t *testing.T) {
	stub := &stubPublisher{failWith: errors.New("listener gone")}

	err := Publish(stub, Event{Type: EventLinksChanged})
	require.EqualError(t, err, "listener gone")
	assert.Equal(t, 1, stub.sendAttempts)
}

func TestPublish_ClosedBusIsIgnored(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.Close())

	assert.NoError(t, Publish(bus, Event{Type: EventProjectsChanged}))
}

func TestPublish_NilClient(t *testing.T) {
	assert.NoError(t, Publish(nil, Event{Type: EventProjectsChanged}))
}

func TestPublish_DeliversToListener(t *testing.T) {
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, Publish(bus, Event{Type: EventMembersChanged, MemberID: 4}))
	ev := receive(t, ch)
	assert.Equal(t, EventMembersChanged, ev.Type)
	assert.Equal(t, 4, ev.MemberID)
}

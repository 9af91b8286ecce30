package events

import (
	"context"
	"errors"
)

// ErrClosed is returned when sending to or listening on a closed bus
var ErrClosed = errors.New("event bus closed")

// EventPublisher defines the interface for sending and receiving events.
// Services depend on this rather than on *Bus so tests can record events.
type EventPublisher interface {
	// SendEvent delivers an event to every current listener
	SendEvent(event Event) error

	// Listen returns a channel of events until ctx is cancelled or the bus closes
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
